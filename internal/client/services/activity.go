package services

import (
	"context"

	"github.com/dmitrijs2005/activityboard/internal/client/client"
	"github.com/dmitrijs2005/activityboard/internal/client/models"
	"github.com/dmitrijs2005/activityboard/internal/logging"
)

// ActivityService covers the catalog and roster calls. It does not check
// whether the session is privileged; that gate belongs to the caller.
type ActivityService interface {
	Catalog(ctx context.Context) (models.Catalog, error)
	Signup(ctx context.Context, activity, email string) Outcome
	Unregister(ctx context.Context, activity, email string) Outcome
}

type activityService struct {
	client client.Client
	log    logging.Logger
}

func NewActivityService(c client.Client, log logging.Logger) ActivityService {
	return &activityService{client: c, log: log}
}

// Catalog fetches the full catalog. Errors are logged here and returned so
// the caller can show the failure notice in place of the list.
func (s *activityService) Catalog(ctx context.Context) (models.Catalog, error) {
	catalog, err := s.client.Activities(ctx)
	if err != nil {
		s.log.Error(ctx, "error fetching activities", "err", err)
		return models.Catalog{}, err
	}
	return catalog, nil
}

func (s *activityService) Signup(ctx context.Context, activity, email string) Outcome {
	reply, err := s.client.Signup(ctx, activity, email)
	return interpret(ctx, s.log, actionSignup, reply, err)
}

func (s *activityService) Unregister(ctx context.Context, activity, email string) Outcome {
	reply, err := s.client.Unregister(ctx, activity, email)
	return interpret(ctx, s.log, actionUnregister, reply, err)
}
