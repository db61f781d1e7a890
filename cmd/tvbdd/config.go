// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dalzilio/tvbdd"
)

// fileConfig is the typed shape of the CLI's YAML configuration file,
// loaded and validated before being turned into tvbdd.Option values -- the
// same load-then-validate idiom the config-file layer of the corpus follows.
type fileConfig struct {
	Varnum     int    `yaml:"varnum"`
	Nodesize   int    `yaml:"nodesize"`
	Cachesize  int    `yaml:"cachesize"`
	Cacheratio int    `yaml:"cacheratio"`
	Heuristic  string `yaml:"heuristic"`
	TimeoutMS  int    `yaml:"timeout_ms"`
	LogLevel   string `yaml:"log_level"`
}

func loadFileConfig(path string) (*fileConfig, error) {
	c := &fileConfig{Varnum: 8, Heuristic: "greedy1"}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *fileConfig) validate() error {
	if c.Varnum <= 0 {
		c.Varnum = 8
	}
	switch c.Heuristic {
	case "", "greedy1", "greedy2", "random":
	default:
		return fmt.Errorf("unknown heuristic %q (want greedy1, greedy2 or random)", c.Heuristic)
	}
	return nil
}

func (c *fileConfig) heuristicFunc() tvbdd.Heuristic {
	switch c.Heuristic {
	case "random":
		return tvbdd.HeuristicRandom
	case "greedy2":
		return tvbdd.HeuristicTwoStepGreedy
	default:
		return tvbdd.HeuristicOneStepGreedy
	}
}

func (c *fileConfig) options() []tvbdd.Option {
	opts := []tvbdd.Option{tvbdd.WithHeuristic(c.heuristicFunc())}
	if c.Nodesize > 0 {
		opts = append(opts, tvbdd.Nodesize(c.Nodesize))
	}
	if c.Cachesize > 0 {
		opts = append(opts, tvbdd.Cachesize(c.Cachesize))
	}
	if c.Cacheratio > 0 {
		opts = append(opts, tvbdd.Cacheratio(c.Cacheratio))
	}
	if c.TimeoutMS > 0 {
		opts = append(opts, tvbdd.WithTimeout(time.Duration(c.TimeoutMS)*time.Millisecond))
	}
	if c.LogLevel != "" {
		if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
			opts = append(opts, tvbdd.WithLogLevel(lvl))
		}
	}
	return opts
}
