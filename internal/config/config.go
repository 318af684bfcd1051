package config

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"8080"`
	APIKey  string `env:"API_KEY,required"`
}

type DatabaseConfig struct {
	Host            string `env:"POSTGRES_HOST,required"`
	Port            string `env:"POSTGRES_PORT,required"`
	User            string `env:"POSTGRES_USER,required"`
	DBName          string `env:"POSTGRES_DB_NAME,required"`
	Password        string `env:"POSTGRES_PASSWORD,required"`
	MaxConn         int    `env:"POSTGRES_DB_MAX_CONN" envDefault:"50"`
	MaxIdleConn     int    `env:"POSTGRES_DB_MAX_IDLE_CONN" envDefault:"10"`
	ConnMaxLifetime int    `env:"POSTGRES_DB_CONN_MAX_LIFETIME" envDefault:"60"`
	SSLMode         string `env:"POSTGRES_SSL_MODE" envDefault:"require"`
}

type InferenceConfig struct {
	Url            string `env:"INFERENCE_URL" envDefault:"https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.1"`
	ApiKey         string `env:"INFERENCE_API_KEY,required"`
	TimeoutSeconds int    `env:"INFERENCE_TIMEOUT_SECONDS" envDefault:"60"`
}

type StorageConfig struct {
	// "local" writes attachments under LocalDir; "s3" archives them in a bucket
	Backend         string `env:"ATTACHMENT_STORAGE_BACKEND" envDefault:"local"`
	LocalDir        string `env:"ATTACHMENT_STORAGE_DIR" envDefault:"attachments"`
	AWSRegion       string `env:"ATTACHMENT_AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"ATTACHMENT_AWS_ACCESS_KEY_ID"`
	AccessKeySecret string `env:"ATTACHMENT_AWS_ACCESS_KEY_SECRET"`
	Bucket          string `env:"ATTACHMENT_BUCKET" envDefault:"mailtriage-attachments"`
}

type EventsConfig struct {
	// Empty URL disables publishing
	RabbitMQURL string `env:"RABBITMQ_URL"`
	Exchange    string `env:"EVENTS_EXCHANGE" envDefault:"mailtriage.events"`
}

type CronConfig struct {
	AttachmentSweepSchedule string `env:"CRON_SCHEDULE_ATTACHMENT_SWEEP" envDefault:"@hourly"`
	AttachmentRetentionHrs  int    `env:"ATTACHMENT_RETENTION_HOURS" envDefault:"24"`
}
