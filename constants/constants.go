package constants

import (
	"os"
	"strconv"
)

func GetPort() int {
	port := os.Getenv("CHORDEX_PORT")
	if port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			return n
		}
	}
	return 8080
}

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("CHORDEX_METADATA_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetMetadataTable() string {
	table := os.Getenv("CHORDEX_METADATA_TABLE")
	if table != "" {
		return table
	}
	return "chordex-metadata"
}

// GetMinSeparation is the default onset distance (in seconds) under which
// notes are considered part of the same chord.
func GetMinSeparation() float64 {
	sep := os.Getenv("CHORDEX_MIN_SEPARATION")
	if sep != "" {
		if f, err := strconv.ParseFloat(sep, 64); err == nil && f > 0 {
			return f
		}
	}
	return DefaultMinSeparation
}

const DefaultMinSeparation = 0.1

// NOTE: DynamoDB BatchGetItem refuses more than 100 keys, we stay well below
const MaxMetadataBatch = 10
