package config

import "time"

const (
	// DefaultMirrorPath is the local copy written before an upload
	DefaultMirrorPath = "website/www/site/data/latest_capability_matrix.json"
	// DefaultBucket is the bucket that receives uploaded matrices
	DefaultBucket = "beam-validates-runner-info"
	// DefaultProjectID is the cloud project billed for storage access
	DefaultProjectID = "apache-beam-testing"
	// DefaultCredentialsFile is the service account key used for uploads
	DefaultCredentialsFile = ".test-infra/validate-runner/src/main/js/apache-beam-testing-keys.json"
	// DefaultUploadTimeout bounds a whole generate run including the upload
	DefaultUploadTimeout = 2 * time.Minute
	// DefaultMarkerCategory tags runner validation tests and is never a row
	DefaultMarkerCategory = "org.apache.beam.sdk.testing.ValidatesRunner"
	// DefaultEnvFile is loaded when present and no --env-file is given
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "CAPMATRIX_"
)

// DefaultEngineNames maps engine keys to column headers
var DefaultEngineNames = map[string]string{
	"flink":    "Apache Flink",
	"dataflow": "Google Cloud Dataflow",
	"spark":    "Apache Spark (RDD/DStream based)",
}
