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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REGRID_TEST_DIR", dir)
	file := filepath.Join(dir, "regrid.toml")
	err := ioutil.WriteFile(file, []byte(`
Periodic = true
ReuseWeights = true
WeightFile = "$REGRID_TEST_DIR/w.nc"
`), os.ModePerm)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Periodic {
		t.Error("Periodic = false, want true")
	}
	if !cfg.ReuseWeights {
		t.Error("ReuseWeights = false, want true")
	}
	if want := filepath.Join(dir, "w.nc"); cfg.WeightFile != want {
		t.Errorf("WeightFile = %q, want %q", cfg.WeightFile, want)
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "regrid.toml")
	if err := ioutil.WriteFile(file, []byte(`Periodic = "maybe"`), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(file); err == nil {
		t.Error("malformed configuration was accepted")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing configuration file was accepted")
	}
}
