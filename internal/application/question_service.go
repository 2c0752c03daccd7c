package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devoverflow/backend/internal/domain/entity"
	repo "github.com/devoverflow/backend/internal/domain/repository"
	"github.com/devoverflow/backend/pkg/helpers"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrForbidden    = errors.New("not authorized to modify this resource")
	ErrInvalidVote  = errors.New("vote must be 'up' or 'down'")
	ErrVoteConflict = errors.New("vote could not be applied")
)

const trendingTagsKey = "questions:tags:trending"

// QuestionService handles the question lifecycle, voting, search indexing,
// and trending-tag aggregation.
type QuestionService struct {
	Repo    repo.QuestionRepository
	Redis   *redis.Client
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewQuestionService(r repo.QuestionRepository, rdb *redis.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *QuestionService {
	return &QuestionService{Repo: r, Redis: rdb, Logger: logger, ES: es, ESIndex: esIndex}
}

type QuestionInput struct {
	Title string
	Body  string
	Tags  []string
}

func (s *QuestionService) Create(ctx context.Context, userID string, in QuestionInput) (*entity.Question, error) {
	q, err := entity.NewQuestion(in.Title, in.Body, in.Tags, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	_ = s.indexQuestion(ctx, q)
	if s.Redis != nil {
		// New tags invalidate the trending snapshot.
		_ = s.Redis.Del(ctx, trendingTagsKey).Err()
	}
	return q, nil
}

func (s *QuestionService) Get(id string) (*entity.Question, error) {
	q, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return q, nil
}

func (s *QuestionService) List(limit, offset int) ([]*entity.Question, error) {
	return s.Repo.List(limit, offset)
}

// Update edits a question. Only the owner or an admin may edit.
func (s *QuestionService) Update(ctx context.Context, id, userID, role string, in QuestionInput) (*entity.Question, error) {
	q, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if q.UserID != userID && role != entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if in.Title != "" {
		q.Title = in.Title
	}
	if in.Body != "" {
		q.Body = in.Body
	}
	if len(in.Tags) > 0 {
		q.Tags = in.Tags
	}
	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	_ = s.indexQuestion(ctx, q)
	return q, nil
}

func (s *QuestionService) Delete(ctx context.Context, id, userID, role string) error {
	q, err := s.Repo.GetByID(id)
	if err != nil {
		return ErrNotFound
	}
	if q.UserID != userID && role != entity.RoleAdmin {
		return ErrForbidden
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// Vote toggles userID's vote on a question. The per-row save is the unit of
// atomicity; concurrent votes on the same row are last-write-wins.
func (s *QuestionService) Vote(ctx context.Context, id, userID string, dir entity.VoteDirection) (*entity.Question, error) {
	if !dir.Valid() {
		return nil, ErrInvalidVote
	}
	q, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	q.Toggle(userID, dir)
	if err := s.Repo.UpdateVotes(q.ID, q.VoteState); err != nil {
		return nil, err
	}
	return q, nil
}

// Search runs a full-text query over title, body, and tags.
func (s *QuestionService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "body", "tags"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// TrendingTags returns the most used tags in descending order of use,
// cached in redis for a minute.
func (s *QuestionService) TrendingTags(ctx context.Context, limit int) ([]entity.TagCount, error) {
	if s.Redis != nil {
		var cached []entity.TagCount
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, trendingTagsKey, &cached); err == nil && hit {
			return cached, nil
		}
	}
	counts, err := s.Repo.TagCounts(limit)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, trendingTagsKey, counts, time.Minute); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("trending tags cache write failed")
		}
	}
	return counts, nil
}

func (s *QuestionService) indexQuestion(ctx context.Context, q *entity.Question) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         q.ID,
		"title":      q.Title,
		"body":       q.Body,
		"tags":       q.Tags,
		"user_id":    q.UserID,
		"score":      q.Score(),
		"created_at": q.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: q.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("question_id", q.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("question_id", q.ID).Warn("es index response error")
	}
	return nil
}

func (s *QuestionService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if res, err := req.Do(c, s.ES); err == nil {
		_ = res.Body.Close()
	}
}
