// Copyright ©2015 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/BurntSushi/toml"
)

// Load decodes the TOML file at path into an AppConfig. It does not
// validate model kinds or build anything — that happens in Build*,
// so a syntactically valid but semantically wrong config is only
// caught once its models are actually requested.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
