package es

import (
	"io"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
)

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, err
	}

	res, err := client.Info()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		log.Printf("elasticsearch error response: %s", body)
		return nil, errResponse(res.Status())
	}

	return client, nil
}

type statusError string

func (e statusError) Error() string { return "elasticsearch: " + string(e) }

func errResponse(status string) error { return statusError(status) }
