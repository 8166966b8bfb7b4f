package seqstore

import "time"

type Config struct {
	File    string        `yaml:"file"`
	Timeout time.Duration `yaml:"timeout"`
}
