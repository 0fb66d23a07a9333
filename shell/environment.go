package shell

import (
	"os"
	"runtime"
)

// Environment exposes the process environment to the config loader.
type Environment struct{}

func NewEnvironment() *Environment {
	return &Environment{}
}

func (this *Environment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (this *Environment) Concurrency() int {
	return runtime.NumCPU()
}
