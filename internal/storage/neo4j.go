package storage

import (
	"context"
	"fmt"

	"github.com/ZetoOfficial/vk-toolkit/internal/models"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
)

type Neo4jStorage struct {
	Driver neo4j.DriverWithContext
}

func NewNeo4jStorage(uri, username, password string) (*Neo4jStorage, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("connect to driver: %w", err)
	}
	return &Neo4jStorage{Driver: driver}, nil
}

func (s *Neo4jStorage) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *Neo4jStorage) session(ctx context.Context, mode neo4j.AccessMode) (neo4j.SessionWithContext, func()) {
	session := s.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode})
	return session, func() {
		if err := session.Close(ctx); err != nil {
			logrus.Warnf("close session: %v", err)
		}
	}
}

// SaveData сохраняет пользователей, сообщества и аудиозаписи в графе.
func (s *Neo4jStorage) SaveData(ctx context.Context, data *models.Data) error {
	session, closeSession := s.session(ctx, neo4j.AccessModeWrite)
	defer closeSession()

	for _, user := range data.Users {
		if _, err := session.Run(ctx, saveUserQuery, userParams(user)); err != nil {
			logrus.Errorf("save user %d: %v", user.ID, err)
			return fmt.Errorf("save user %d: %w", user.ID, err)
		}
	}

	for _, group := range data.Groups {
		if _, err := session.Run(ctx, saveGroupQuery, groupParams(group)); err != nil {
			logrus.Errorf("save group %d: %v", group.ID, err)
			return fmt.Errorf("save group %d: %w", group.ID, err)
		}
	}

	for _, audio := range data.Audios {
		label, ownerID := ownerNode(audio.OwnerID)
		params := audioParams(audio, data.Lyrics)
		params["owner_node_id"] = ownerID
		if _, err := session.Run(ctx, fmt.Sprintf(saveAudioQuery, label), params); err != nil {
			logrus.Errorf("save audio %d_%d: %v", audio.OwnerID, audio.ID, err)
			return fmt.Errorf("save audio %d_%d: %w", audio.OwnerID, audio.ID, err)
		}
	}

	for _, link := range data.Friends {
		_, err := session.Run(ctx, saveFriendStatusQuery, map[string]any{
			"id":     link.UserID,
			"status": link.Status.String(),
		})
		if err != nil {
			logrus.Errorf("save friend status %d: %v", link.UserID, err)
			return fmt.Errorf("save friend status %d: %w", link.UserID, err)
		}
	}

	return nil
}

func (s *Neo4jStorage) RunQuery(ctx context.Context, queryName string) ([]map[string]any, error) {
	query, exists := neo4jQueries[queryName]
	if !exists {
		return nil, fmt.Errorf("query %s not found", queryName)
	}

	session, closeSession := s.session(ctx, neo4j.AccessModeRead)
	defer closeSession()

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var results []map[string]any
	for result.Next(ctx) {
		record := result.Record()
		recordMap := make(map[string]any)
		for _, key := range record.Keys {
			value, _ := record.Get(key)
			recordMap[key] = value
		}
		results = append(results, recordMap)
	}

	if err = result.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (s *Neo4jStorage) Ping(ctx context.Context) error {
	session, closeSession := s.session(ctx, neo4j.AccessModeRead)
	defer closeSession()

	result, err := session.Run(ctx, "RETURN 1", nil)
	if err != nil {
		return fmt.Errorf("ping query failed: %w", err)
	}

	if result.Next(ctx) {
		return nil
	}
	if err = result.Err(); err != nil {
		return fmt.Errorf("ping query error: %w", err)
	}
	return fmt.Errorf("ping query did not return any results")
}
