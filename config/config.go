package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config lấy giá trị biến môi trường từ file .env
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Print("Error loading .env file")
	}
	return os.Getenv(key)
}
