package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func InitViper() {
	file := pflag.String("config", "configs/dev.yaml", "配置文件路径")
	envFile := pflag.String("env", ".env", "密钥等环境变量文件，不存在就忽略")
	// 这一步之后，file 里面才有值
	pflag.Parse()

	// .env 里面的变量不会覆盖已经存在的环境变量
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		panic(err)
	}
	// 配置文件里面用 ${COS_SECRET_ID} 这种写法引用密钥
	raw = []byte(os.ExpandEnv(string(raw)))

	viper.SetDefault("mode", "debug")
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(bytes.NewReader(raw)); err != nil {
		panic(err)
	}
	// 不打印全部配置，里面有 SecretKey
	fmt.Println("配置文件读取成功", *file)
}
