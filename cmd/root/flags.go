package root

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	if err := v.BindPFlag(key, flag); err != nil {
		Log.WithError(err).Warn("Failed to bind flag")
	}
}

// BindFlag binds a subcommand flag to a configuration key.
func BindFlag(key string, flag *pflag.Flag) {
	bindFlag(settings, key, flag)
}
