// Package graphql exposes the public catalogue (venues, news and the
// approved message board) as a read-only GraphQL schema.
package graphql

import (
	"context"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/venuebook/app/models"
	"github.com/shashiranjanraj/venuebook/app/services"
	schema "github.com/shashiranjanraj/venuebook/pkg/graphql"
	"github.com/shashiranjanraj/venuebook/pkg/orm"
)

type VenueReader interface {
	Get(ctx context.Context, id uint) (models.Venue, error)
	Page(ctx context.Context, page, size int) (orm.Page[models.Venue], error)
}

type NewsReader interface {
	Page(ctx context.Context, page, size int) (orm.Page[models.News], error)
}

type BoardReader interface {
	Approved(ctx context.Context, page int) (orm.Page[models.MessageVo], error)
}

var venueType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Venue",
	Fields: graphql.Fields{
		"venueID":     &graphql.Field{Type: graphql.Int},
		"venueName":   &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Int},
		"picture":     &graphql.Field{Type: graphql.String},
		"address":     &graphql.Field{Type: graphql.String},
		"open_time":   &graphql.Field{Type: graphql.String},
		"close_time":  &graphql.Field{Type: graphql.String},
	},
})

var newsType = graphql.NewObject(graphql.ObjectConfig{
	Name: "News",
	Fields: graphql.Fields{
		"newsID":  &graphql.Field{Type: graphql.Int},
		"title":   &graphql.Field{Type: graphql.String},
		"content": &graphql.Field{Type: graphql.String},
		"time":    &graphql.Field{Type: graphql.DateTime},
	},
})

var messageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Message",
	Fields: graphql.Fields{
		"messageID": &graphql.Field{Type: graphql.Int},
		"userID":    &graphql.Field{Type: graphql.String},
		"userName":  &graphql.Field{Type: graphql.String},
		"picture":   &graphql.Field{Type: graphql.String},
		"content":   &graphql.Field{Type: graphql.String},
		"time":      &graphql.Field{Type: graphql.DateTime},
	},
})

func pageType(name string, item *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: name,
		Fields: graphql.Fields{
			"content":       &graphql.Field{Type: graphql.NewList(item)},
			"size":          &graphql.Field{Type: graphql.Int},
			"totalElements": &graphql.Field{Type: graphql.Int},
			"totalPages":    &graphql.Field{Type: graphql.Int},
		},
	})
}

var pageArgs = graphql.FieldConfigArgument{
	"page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
}

// pageResult flattens p for the default resolver.
func pageResult[T any](p orm.Page[T], items interface{}) map[string]interface{} {
	return map[string]interface{}{
		"content":       items,
		"size":          p.PageSize,
		"totalElements": int(p.TotalCount),
		"totalPages":    p.TotalPages(),
	}
}

func messageRow(m models.MessageVo) map[string]interface{} {
	return map[string]interface{}{
		"messageID": int(m.MessageID),
		"userID":    m.UserID,
		"userName":  m.UserName,
		"picture":   m.Picture,
		"content":   m.Content,
		"time":      m.Time,
	}
}

// NewSchema builds the catalogue schema over the given readers.
func NewSchema(venues VenueReader, news NewsReader, board BoardReader) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"venue": &graphql.Field{
				Type: venueType,
				Args: graphql.FieldConfigArgument{
					"venueID": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["venueID"].(int)
					if id < 1 {
						return nil, nil
					}
					v, err := venues.Get(p.Context, uint(id))
					if err != nil {
						return nil, err
					}
					return v, nil
				},
			},
			"venues": &graphql.Field{
				Type: pageType("VenuePage", venueType),
				Args: pageArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					page, _ := p.Args["page"].(int)
					res, err := venues.Page(p.Context, page, services.UserPageSize)
					if err != nil {
						return nil, err
					}
					return pageResult(res, res.Items), nil
				},
			},
			"news": &graphql.Field{
				Type: pageType("NewsPage", newsType),
				Args: pageArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					page, _ := p.Args["page"].(int)
					res, err := news.Page(p.Context, page, services.UserPageSize)
					if err != nil {
						return nil, err
					}
					return pageResult(res, res.Items), nil
				},
			},
			"messages": &graphql.Field{
				Type: pageType("MessagePage", messageType),
				Args: pageArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					page, _ := p.Args["page"].(int)
					res, err := board.Approved(p.Context, page)
					if err != nil {
						return nil, err
					}
					rows := make([]map[string]interface{}, len(res.Items))
					for i, m := range res.Items {
						rows[i] = messageRow(m)
					}
					return pageResult(res, rows), nil
				},
			},
		},
	})
	return schema.NewSchema(query)
}
