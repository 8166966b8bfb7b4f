package server

import (
	"time"
)

type Config struct {
	Port                 int               `yaml:"port"`
	Host                 string            `yaml:"host"`
	AdminKey             string            `yaml:"adminKey"`
	Headers              map[string]string `yaml:"headers"`
	AntidosBuckets       int               `yaml:"antidosBuckets"`
	AntidosPeriod        time.Duration     `yaml:"antidosPeriod"`
	AntidosMaxConcurrent int               `yaml:"antidosMaxConcurrent"`
	ShutdownTimeout      time.Duration     `yaml:"shutdownTimeout"`
	TLS                  TLSConfig         `yaml:"tls"`
}

type TLSConfig struct {
	CertFile       string        `yaml:"certFile"`
	KeyFile        string        `yaml:"keyFile"`
	ReloadInterval time.Duration `yaml:"reloadInterval"`
}
