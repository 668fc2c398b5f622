package database

import (
	"context"
	"fmt"
	"time"

	"github.com/nao1215/scamscan/internal/model"
)

// AppendTrainingExamples adds examples to the corpus in one transaction.
// Examples are validated first; one invalid example stores nothing.
func (rdb *ResultDB) AppendTrainingExamples(ctx context.Context, examples []model.TrainingExample) error {
	for i, ex := range examples {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("example %d: %w", i, err)
		}
	}

	tx, err := rdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, ex := range examples {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO training_examples (text, label) VALUES (?, ?)`,
			ex.Text, string(ex.Label),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert training example: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit training examples: %w", err)
	}
	return nil
}

// TrainingCorpus returns every stored example in insertion order.
func (rdb *ResultDB) TrainingCorpus(ctx context.Context) ([]model.TrainingExample, error) {
	rows, err := rdb.db.QueryContext(ctx, `SELECT text, label FROM training_examples ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query training corpus: %w", err)
	}
	defer rows.Close()

	corpus := make([]model.TrainingExample, 0)
	for rows.Next() {
		var ex model.TrainingExample
		var label string
		if err := rows.Scan(&ex.Text, &label); err != nil {
			return nil, fmt.Errorf("failed to scan training example: %w", err)
		}
		ex.Label = model.Label(label)
		corpus = append(corpus, ex)
	}
	return corpus, rows.Err()
}

// CorpusInfo describes the stored training corpus.
type CorpusInfo struct {
	Examples    int
	Scam        int
	Legitimate  int
	LastAddedAt time.Time
}

// TrainingCorpusInfo summarizes the stored corpus.
func (rdb *ResultDB) TrainingCorpusInfo(ctx context.Context) (*CorpusInfo, error) {
	info := &CorpusInfo{}
	var last string
	err := rdb.db.QueryRowContext(ctx, `
	SELECT COUNT(*),
		COALESCE(SUM(CASE WHEN label = 'scam' THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN label = 'legitimate' THEN 1 ELSE 0 END), 0),
		COALESCE(MAX(added_at), '')
	FROM training_examples`).Scan(&info.Examples, &info.Scam, &info.Legitimate, &last)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize training corpus: %w", err)
	}
	info.LastAddedAt = parseTimestamp(last)
	return info, nil
}
