package main

import (
	"context"
	"fmt"
	"os"

	"magicinc/internal/ctxlog"
	"magicinc/internal/seqstore"
	"magicinc/internal/server"

	"github.com/goccy/go-yaml"
)

type SequenceConfig struct {
	Name  string `yaml:"name"`
	Start string `yaml:"start"`
}

type Config struct {
	Log       ctxlog.Config    `yaml:"log"`
	Store     seqstore.Config  `yaml:"store"`
	Server    server.Config    `yaml:"server"`
	Sequences []SequenceConfig `yaml:"sequences"`
}

func LoadConfig(ctx context.Context, filename string) (Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Config{}, fmt.Errorf("open %q: %w", filename, err)
	}
	defer ctxlog.Close(ctx, "config file", file)

	dec := yaml.NewDecoder(file, yaml.Strict())

	var config Config
	err = dec.Decode(&config)
	if err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	return config, nil
}
