package db

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

// Client looks up song metadata for MIDI files, keyed by filename.
type Client struct {
	api   dynamodbiface.DynamoDBAPI
	table string
}

func NewClient() (*Client, error) {
	endpoint := constants.GetMetadataEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return &Client{api: dynamodb.New(sess), table: constants.GetMetadataTable()}, nil
}

func GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	client, err := NewClient()
	if err != nil {
		return nil, err
	}
	return client.GetMidiMetadatas(filenames)
}

// GetMidiMetadatas fetches in batches. Files without metadata are missing
// from the result.
func (c *Client) GetMidiMetadatas(filenames []string) (map[string]model.MidiMetadata, error) {
	res := make(map[string]model.MidiMetadata)

	for start := 0; start < len(filenames); start += constants.MaxMetadataBatch {
		end := start + constants.MaxMetadataBatch
		if end > len(filenames) {
			end = len(filenames)
		}
		if err := c.getBatch(filenames[start:end], res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (c *Client) getBatch(filenames []string, res map[string]model.MidiMetadata) error {
	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			c.table: {Keys: keys},
		},
	}
	dbres, err := c.api.BatchGetItem(input)
	if err != nil {
		return fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[c.table] {
		if v["PK"] == nil || v["PK"].S == nil {
			continue
		}
		res[*v["PK"].S] = toMetadata(v)
	}
	return nil
}

func toMetadata(item map[string]*dynamodb.AttributeValue) model.MidiMetadata {
	str := func(name string) string {
		if v, ok := item[name]; ok && v.S != nil {
			return *v.S
		}
		return ""
	}

	var s model.MidiMetadata
	if v, ok := item["Year"]; ok && v.N != nil {
		year, _ := strconv.ParseUint(*v.N, 10, 32)
		s.Year = uint(year)
	}
	s.Artist = str("Artist")
	s.Release = str("Release")
	s.Title = str("Title")
	return s
}
