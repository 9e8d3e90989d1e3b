package config

import (
	"strings"
	"time"

	"github.com/agubarev/tokenstore/pkg/util"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable, i.e. TOKENSTORE_FILE
const EnvPrefix = "TOKENSTORE"

// configuration keys
const (
	KeyFile   = "file"
	KeyDebug  = "debug"
	KeyLogDir = "log_dir"
	KeyTTL    = "ttl"
)

// default values
const (
	DefaultFilePath = "~/.tokenstore/tokens.json"
	DefaultTTL      = 1 * time.Hour
)

// errors
var (
	ErrNilConfig     = errors.New("config is nil")
	ErrEmptyFilePath = errors.New("token file path is empty")
)

// Config holds the runtime configuration
type Config struct {
	// path of the token file
	FilePath string

	// enables debug log level
	Debug bool

	// when set, logs are also written into this directory
	LogDir string

	// default longevity of issued tokens
	TTL time.Duration
}

// New returns a viper instance which is aware of the defaults
// and of the environment
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyFile, DefaultFilePath)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyTTL, DefaultTTL)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration file (if given, otherwise looks for
// `config.*` inside ~/.tokenstore) and resolves the final configuration
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = New()
	}

	cfgFile = strings.TrimSpace(cfgFile)

	if cfgFile != "" {
		path, err := util.ExpandPath(cfgFile)
		if err != nil {
			return nil, err
		}

		v.SetConfigFile(path)

		if err = v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("$HOME/.tokenstore")

		// the config file is optional
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrap(err, "failed to read config file")
			}
		}
	}

	filePath, err := util.ExpandPath(v.GetString(KeyFile))
	if err != nil {
		return nil, err
	}

	logDir, err := util.ExpandPath(v.GetString(KeyLogDir))
	if err != nil {
		return nil, err
	}

	c := &Config{
		FilePath: filePath,
		Debug:    v.GetBool(KeyDebug),
		LogDir:   logDir,
		TTL:      v.GetDuration(KeyTTL),
	}

	return c, c.Validate()
}

// Validate checks whether the configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}

	if c.FilePath == "" {
		return ErrEmptyFilePath
	}

	if c.TTL <= 0 {
		return errors.Errorf("ttl must be positive, got %s", c.TTL)
	}

	return nil
}
