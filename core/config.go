package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "EduTrack")
	Conf.SetDefault("secretKey", "x1r$7dh)q#2mz&wov8u5(b!t)c4*e9(j#yk3p^$fnsg6alqw")
	Conf.SetDefault("serverAddr", ":8000")
	Conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	Conf.SetDefault("storageBackend", "sqlite") // sqlite | postgres | redis | memory
	Conf.SetDefault("storagePath", "edutrack.db")
	Conf.SetDefault("redisAddr", "localhost:6379")
	Conf.SetDefault("postgresDSN", "")
	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}
