package env

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var cache = make(map[string]string)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// Get reads a config value from the environment. If a companion
// <key>.file variable is set, the value is read from that file instead,
// which is how container secrets get mounted.
func Get(key string) string {
	val, exists := cache[key]
	if exists {
		return val
	}

	filename := viper.GetString(key + ".file")
	if filename == "" {
		return viper.GetString(key)
	}
	val, err := readSecret(filename)
	if err != nil {
		log.Printf("error reading secret: %s", err.Error())
	}
	//cache the full value so the file is not re-read on every lookup
	cache[key] = val
	return val
}

func GetOr(key string, def string) string {
	res := Get(key)
	if res == "" {
		return def
	}
	return res
}

func GetBool(key string) bool {
	return cast.ToBool(Get(key))
}

func GetStringArray(key, separator string) []string {
	val := Get(key)
	if separator == "" {
		separator = ","
	}

	var out []string
	for _, v := range strings.Split(val, separator) {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func readSecret(file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
