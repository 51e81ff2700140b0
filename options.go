/*
Copyright © 2018 the Regrid authors.
This file is part of Regrid.

Regrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Regrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Regrid.  If not, see <http://www.gnu.org/licenses/>.
*/

package regrid

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// Config holds the optional construction parameters for a Regridder.
// The zero value means: not periodic, derive the weight file name from
// the grids and method, recompute weights, and log through the logrus
// standard logger.
type Config struct {
	// Periodic indicates that the source grid wraps around in
	// longitude. Only useful for global grids with non-conservative
	// methods; it is forced to false for the conservative method.
	Periodic bool

	// WeightFile is the path for the weight file. If empty, the
	// canonical name {method}_{NyIn}x{NxIn}_{NyOut}x{NxOut}[_peri].nc
	// in the current working directory is used. Environment variables
	// are expanded when the configuration is loaded from a file.
	WeightFile string

	// ReuseWeights reads an existing weight file instead of
	// recomputing it, to save computing time.
	ReuseWeights bool

	// Logger receives the build, reuse, overwrite and removal notices.
	// If nil, the logrus standard logger is used.
	Logger *logrus.Logger `toml:"-"`
}

// LoadConfig reads a Config from the TOML file at path, expanding
// environment variables in the weight file path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("regrid: opening configuration file: %v", err)
	}
	defer f.Close()
	b, err := ioutil.ReadAll(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("regrid: reading configuration file: %v", err)
	}
	cfg := new(Config)
	if _, err := toml.Decode(string(b), cfg); err != nil {
		return nil, fmt.Errorf("regrid: parsing configuration file: %v", err)
	}
	cfg.WeightFile = os.ExpandEnv(cfg.WeightFile)
	return cfg, nil
}
