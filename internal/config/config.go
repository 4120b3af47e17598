package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Specification struct {
	LogLevel      string `default:"info" envconfig:"log_level"`
	HeapSortInput []int  `default:"10,15,8,20,17" envconfig:"heapsort_input"`
	TopK          int    `default:"3" envconfig:"top_k"`
}

var Spec Specification

func init() {
	err := envconfig.Process("", &Spec)
	if err != nil {
		log.Fatal(err.Error())
	}
}
