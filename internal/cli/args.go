package cli

import (
	"strconv"
	"strings"
)

// gatherCutValues rewrites space-separated --cut values into the single
// comma-separated form pflag understands.
//
// Every token following -c or --cut that parses as an unsigned integer is
// taken, so "-c 1 2 3" becomes "--cut=1,2,3" and the wrong count is reported
// by validation instead of a stray number being read as a positional path.
// Tokens after "--" are left alone.
func gatherCutValues(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg != "-c" && arg != "--cut" {
			out = append(out, arg)
			continue
		}

		var values []string
		for i+1 < len(args) && isUint(args[i+1]) {
			values = append(values, args[i+1])
			i++
		}
		if len(values) == 0 {
			// Comma form or missing value; pflag handles both.
			out = append(out, arg)
			continue
		}
		out = append(out, "--cut="+strings.Join(values, ","))
	}
	return out
}

func isUint(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
