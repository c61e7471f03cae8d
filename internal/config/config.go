// Copyright © 2015 Kornel Lesiński <kornel@geekhood.net>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package config loads defaults for dupekrill's flags from
// ~/.dupekrillrc.yaml (or the file named by $DUPEKRILL_CONFIG), so a user
// can set e.g. a standing exclude list without retyping it every run.
// Flags passed on the command line always win over whatever is loaded here.
package config

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Defaults is the subset of Options/CLI flags a config file may set.
type Defaults struct {
	SmallFiles bool
	Quiet      bool
	Exclude    []string
	MinSize    uint64
	MaxSize    uint64
}

// Load reads the config file, if any, and returns the defaults it sets.
// A missing file is not an error: it just means no defaults.
func Load() (Defaults, error) {
	var d Defaults

	v := viper.New()
	v.SetEnvPrefix("DUPEKRILL")
	v.SetConfigType("yaml")

	if path := os.Getenv("DUPEKRILL_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return d, err
		}
		v.SetConfigName(".dupekrillrc")
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return d, nil
		}
		if os.IsNotExist(err) {
			return d, nil
		}
		return d, err
	}

	d.SmallFiles = v.GetBool("small")
	d.Quiet = v.GetBool("quiet")
	d.Exclude = v.GetStringSlice("exclude")
	d.MinSize = v.GetUint64("min-size")
	d.MaxSize = v.GetUint64("max-size")
	return d, nil
}

// Merge returns the exclude names from both sources with duplicates removed,
// config-file entries first.
func Merge(configExclude, flagExclude []string) []string {
	seen := make(map[string]struct{}, len(configExclude)+len(flagExclude))
	var out []string
	for _, n := range append(append([]string{}, configExclude...), flagExclude...) {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
