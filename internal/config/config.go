package config

import (
	"os"

	"github.com/joho/godotenv"
)

type (
	Container struct {
		App        *App
		HTTP       *HTTP
		Mongo      *Mongo
		Cloudinary *Cloudinary
		Upload     *Upload
	}

	App struct {
		Name string
		Env  string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Mongo struct {
		URI        string
		Database   string
		Collection string
	}

	Cloudinary struct {
		URL       string
		CloudName string
		APIKey    string
		APISecret string
		Folder    string
	}

	Upload struct {
		Dir string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	http := &HTTP{
		Env:            os.Getenv("APP_ENV"),
		Port:           getEnv("HTTP_PORT", "3000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		URL:            os.Getenv("HTTP_URL"),
	}

	mongo := &Mongo{
		URI:        os.Getenv("MONGODB_URI"),
		Database:   getEnv("MONGODB_DATABASE", "rubyautoparts"),
		Collection: getEnv("MONGODB_PARTS_COLLECTION", "parts"),
	}

	cloudinary := &Cloudinary{
		URL:       os.Getenv("CLOUDINARY_URL"),
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		Folder:    getEnv("CLOUDINARY_FOLDER", "ruby-autoparts"),
	}

	upload := &Upload{
		Dir: getEnv("UPLOAD_DIR", "./uploads"),
	}

	return &Container{
		App:        app,
		HTTP:       http,
		Mongo:      mongo,
		Cloudinary: cloudinary,
		Upload:     upload,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
