package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/flagx"
	"github.com/dmitrijs2005/fitkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the client config. Absent keys leave
// the current value untouched.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	DataDir            string          `json:"data_dir"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
	LogLevel           string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. Read and decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
