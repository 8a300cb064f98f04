package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de los tres servicios (lectura vía Viper
// desde env y opcionalmente archivo .env). Cada binario usa solo las
// secciones que necesita.
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	AWS    AWSConfig
	Dynamo DynamoConfig
	S3     S3Config
	JWT    JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AWSConfig credenciales y región compartidas por DynamoDB y S3.
// AccessKey/SecretKey vacíos = credential chain por defecto (roles IAM en
// despliegue); estáticos solo para entornos locales.
type AWSConfig struct {
	Region    string
	AccessKey string
	SecretKey string
}

// DynamoConfig tablas del almacén clave-valor. Endpoint no vacío apunta a un
// dynamodb-local (docker) en lugar de AWS.
type DynamoConfig struct {
	Endpoint      string
	ProductsTable string
	SellersTable  string
	SalesTable    string
}

// S3Config bucket de imágenes de producto.
type S3Config struct {
	ImagesBucket string
}

// JWTConfig configuración del middleware de autenticación.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// un archivo .env en el directorio de trabajo). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "software-modernization"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		AWS: AWSConfig{
			Region:    getString(v, "AWS_REGION", "us-east-1"),
			AccessKey: getString(v, "AWS_ACCESS_KEY_ID", ""),
			SecretKey: getString(v, "AWS_SECRET_ACCESS_KEY", ""),
		},
		Dynamo: DynamoConfig{
			Endpoint:      getString(v, "DYNAMODB_ENDPOINT_URL", ""),
			ProductsTable: getString(v, "PRODUCTS_TABLE_NAME", "products"),
			SellersTable:  getString(v, "SELLERS_TABLE_NAME", "sellers"),
			SalesTable:    getString(v, "SALES_TABLE_NAME", "sales"),
		},
		S3: S3Config{
			ImagesBucket: getString(v, "PRODUCT_IMAGES_BUCKET", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "software-modernization"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
