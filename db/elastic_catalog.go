package db

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/olivere/elastic/v7"

	"library/models"
)

type ElasticCatalog struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func NewElasticCatalog(indexName string, elasticClient *elastic.Client) *ElasticCatalog {
	return &ElasticCatalog{indexName, elasticClient}
}

func (catalog *ElasticCatalog) Index(ctx context.Context, book *models.Book) error {
	_, err := catalog.ElasticClient.
		Index().
		Index(catalog.IndexName).
		Id(book.Isbn).
		BodyJson(book).
		Do(ctx)

	return err
}

func (catalog *ElasticCatalog) GetByIsbn(ctx context.Context, isbn string) (*models.Book, error) {
	doc, err := catalog.ElasticClient.
		Get().
		Index(catalog.IndexName).
		Id(isbn).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}

	if err != nil {
		return nil, err
	}

	if !doc.Found {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}

	var book models.Book
	err = json.Unmarshal(doc.Source, &book)

	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (catalog *ElasticCatalog) Search(ctx context.Context, title, authorName, genre string) ([]*models.Book, error) {
	boolQuery := elastic.NewBoolQuery()
	if title != "" {
		boolQuery.Must(elastic.NewTermQuery("title.keyword", title))
	}
	if authorName != "" {
		boolQuery.Must(elastic.NewMatchQuery("author_name", html.UnescapeString(authorName)))
	}
	if genre != "" {
		boolQuery.Must(elastic.NewTermQuery("genre.keyword", genre))
	}

	result, err := catalog.ElasticClient.Search().
		Index(catalog.IndexName).
		Pretty(false).
		Size(10000).
		Query(boolQuery).
		Do(ctx)

	if err != nil {
		return nil, err
	}

	books := make([]*models.Book, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var book models.Book
		if err := json.Unmarshal(hit.Source, &book); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	return books, nil
}
