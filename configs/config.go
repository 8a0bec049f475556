package configs

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App     `mapstructure:"app"`
	Twitter `mapstructure:"twitter"`
	Session `mapstructure:"session"`
	Alexa   `mapstructure:"alexa"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Twitter struct - App credentials and API host for the Twitter client
type Twitter struct {
	ConsumerKey    string `mapstructure:"consumer_key"`
	ConsumerSecret string `mapstructure:"consumer_secret"`
	BaseURL        string `mapstructure:"base_url"`
}

// Session struct - Session store location and read-out page size
type Session struct {
	StorePath string `mapstructure:"store_path"`
	PageSize  int    `mapstructure:"page_size"`
}

// Alexa struct - Skill-facing settings; BaseURL is the public URL of this
// service, used to build the account-linking card link
type Alexa struct {
	BaseURL string `mapstructure:"base_url"`
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

func getConfig(path, env string) {
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Println("Config file has changed: ", e.Name)
	})
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalln(err)
	}
}
