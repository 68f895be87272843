/*
 * Copyright 2023 dbweave, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"io/ioutil"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dbweave/stmtbind/pkg/driver"
	"github.com/dbweave/stmtbind/pkg/log"
)

type (
	// Configuration is the file-level configuration of a host application's
	// connections. Process lifecycle stays with the host; this only carries
	// what the binding layer and its logger need.
	Configuration struct {
		Connections []*Connection `yaml:"connections" json:"connections"`

		Logging *log.Config `yaml:"logging" json:"logging"`
	}

	// Connection describes one session, either as a DSN or as discrete
	// fields. A non-empty DSN takes precedence.
	Connection struct {
		Name    string            `yaml:"name" json:"name"`
		DSN     string            `yaml:"dsn" json:"dsn"`
		User    string            `yaml:"user" json:"user"`
		Passwd  string            `yaml:"password" json:"password"`
		Net     string            `yaml:"net" json:"net"`
		Addr    string            `yaml:"addr" json:"addr"`
		DBName  string            `yaml:"db_name" json:"db_name"`
		Charset string            `yaml:"charset" json:"charset"`
		Loc     string            `yaml:"loc" json:"loc"`
		Params  map[string]string `yaml:"params" json:"params"`
	}
)

// DriverConfig resolves the connection entry into driver settings.
func (c *Connection) DriverConfig() (*driver.Config, error) {
	if c.DSN != "" {
		cfg, err := driver.ParseDSN(c.DSN)
		if err != nil {
			return nil, errors.Wrapf(err, "parse dsn of connection '%s' failed", c.Name)
		}
		return cfg, nil
	}

	cfg := driver.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Passwd
	cfg.Net = c.Net
	cfg.Addr = c.Addr
	cfg.DBName = c.DBName
	if c.Charset != "" {
		cfg.Charset = c.Charset
	}
	if c.Loc != "" {
		loc, err := time.LoadLocation(c.Loc)
		if err != nil {
			return nil, errors.Wrapf(err, "load location of connection '%s' failed", c.Name)
		}
		cfg.Loc = loc
	}
	if len(c.Params) > 0 {
		cfg.Params = make(map[string]string, len(c.Params))
		for k, v := range c.Params {
			cfg.Params[k] = v
		}
	}
	return cfg, nil
}

func parse(content []byte) (*Configuration, error) {
	cfg := &Configuration{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "yaml unmarshal config failed")
	}
	return cfg, nil
}

// Load reads and parses the config file at path. A logging section, when
// present, re-initializes the package logger.
func Load(path string) (*Configuration, error) {
	configPath, _ := filepath.Abs(path)
	log.Infof("load config from: %s", configPath)
	content, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "load config failed")
	}
	cfg, err := parse(content)
	if err != nil {
		return nil, err
	}
	if cfg.Logging != nil {
		log.Init(cfg.Logging)
	}
	return cfg, nil
}
