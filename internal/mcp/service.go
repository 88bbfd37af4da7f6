package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitdash/internal/recovery"
	"github.com/2beens/fitdash/internal/training"
	"github.com/2beens/fitdash/internal/workflow"
)

type baselineSource interface {
	Baseline(ctx context.Context, athleteID int) ([]recovery.Day, error)
	Readiness(ctx context.Context, athleteID int, date time.Time) (*recovery.Day, error)
}

type stepLogSource interface {
	StepsBetween(ctx context.Context, athleteID int, from, to time.Time) ([]workflow.StepLogEntry, error)
}

type fitnessSource interface {
	Fitness(ctx context.Context, athleteID int, from, to time.Time) ([]training.FitnessDay, error)
}

// contextService is what the tool handlers need; the single athlete is bound in.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	Readiness(ctx context.Context, date time.Time) (*recovery.Day, error)
	Baseline(ctx context.Context, days int) ([]recovery.Day, error)
	StepLog(ctx context.Context, from, to time.Time) ([]workflow.StepLogEntry, error)
	Fitness(ctx context.Context, from, to time.Time) ([]training.FitnessDay, error)
}

type ContextService struct {
	athleteID int
	schema    SchemaRepo
	baseline  baselineSource
	steps     stepLogSource
	fitness   fitnessSource
}

func NewContextService(
	athleteID int,
	schema SchemaRepo,
	baseline baselineSource,
	steps stepLogSource,
	fitness fitnessSource,
) *ContextService {
	return &ContextService{
		athleteID: athleteID,
		schema:    schema,
		baseline:  baseline,
		steps:     steps,
		fitness:   fitness,
	}
}

func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Fitdash DB Schema\n\nNo analytics tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Fitdash DB Schema\n\n")
	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) Readiness(ctx context.Context, date time.Time) (*recovery.Day, error) {
	return s.baseline.Readiness(ctx, s.athleteID, date)
}

// Baseline returns the most recent days of the computed baseline.
func (s *ContextService) Baseline(ctx context.Context, days int) ([]recovery.Day, error) {
	all, err := s.baseline.Baseline(ctx, s.athleteID)
	if err != nil {
		return nil, err
	}
	if days > 0 && len(all) > days {
		all = all[len(all)-days:]
	}
	return all, nil
}

func (s *ContextService) StepLog(ctx context.Context, from, to time.Time) ([]workflow.StepLogEntry, error) {
	return s.steps.StepsBetween(ctx, s.athleteID, from, to)
}

func (s *ContextService) Fitness(ctx context.Context, from, to time.Time) ([]training.FitnessDay, error) {
	return s.fitness.Fitness(ctx, s.athleteID, from, to)
}
