package services

import (
	"context"
	"strings"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
)

func (s *Service) CreateTodo(ctx context.Context, text string) (models.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return models.Todo{}, invalid(util.TEXT_IS_REQUIRED)
	}
	t := models.Todo{Text: text, CreatedAt: s.now()}
	if err := s.store.Todos.Create(ctx, &t); err != nil {
		log.Error().Err(err).Msg("Error from Create todo")
		return t, err
	}
	return t, nil
}

// ToggleTodo flips done and returns the updated item.
func (s *Service) ToggleTodo(ctx context.Context, id string) (models.Todo, error) {
	t, err := s.store.Todos.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID todo")
		return t, err
	}
	t.Done = !t.Done
	if err := s.store.Todos.SetDone(ctx, id, t.Done); err != nil {
		log.Error().Err(err).Msg("Error from SetDone")
		return t, err
	}
	return t, nil
}

func (s *Service) DeleteTodo(ctx context.Context, id string) error {
	if err := s.store.Todos.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from Delete todo")
		return err
	}
	return nil
}

func (s *Service) ListTodos(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.store.Todos.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindAll todos")
	}
	return todos, err
}
