package config

import "os"

func IsDebug() bool {
	return os.Getenv("ASSIST_DEBUG") == "1"
}
