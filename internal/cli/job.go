package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// job describes one sorting request loaded from a TOML file:
//
//	values = [1, 5, 2, -2, 7, -4]
//	from   = 1
//	to     = 4
//	length = 6
//
// Omitted bounds default to the whole slice.
type job struct {
	Values []int `toml:"values"`
	From   int   `toml:"from"`
	To     int   `toml:"to"`
	Length int   `toml:"length"`
}

// loadJob decodes path and fills in defaults for keys that were not set.
func loadJob(path string) (job, error) {
	var j job
	md, err := toml.DecodeFile(path, &j)
	if err != nil {
		return job{}, fmt.Errorf("load job %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return job{}, fmt.Errorf("load job %s: unknown key %q", path, undecoded[0].String())
	}
	if !md.IsDefined("length") {
		j.Length = len(j.Values)
	}
	if !md.IsDefined("to") {
		j.To = j.Length
	}

	return j, nil
}
