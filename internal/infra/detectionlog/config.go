package detectionlog

import "os"

type Config struct {
	Disabled bool

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string

	BigQueryProjectID string
	BigQueryDataset   string
	BigQueryTable     string
}

func LoadConfig() *Config {
	influxURL := os.Getenv("INFLUXDB_URL")
	if influxURL == "" {
		influxURL = "http://localhost:8086"
	}

	bucket := os.Getenv("INFLUXDB_BUCKET")
	if bucket == "" {
		bucket = "detections"
	}

	table := os.Getenv("BIGQUERY_TABLE")
	if table == "" {
		table = "detections"
	}

	return &Config{
		Disabled: os.Getenv("DETECTION_LOG_DISABLED") == "true",

		InfluxDBURL:    influxURL,
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: bucket,

		BigQueryProjectID: os.Getenv("BIGQUERY_PROJECT_ID"),
		BigQueryDataset:   os.Getenv("BIGQUERY_DATASET"),
		BigQueryTable:     table,
	}
}
