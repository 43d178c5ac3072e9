package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-hourly-insights/internal/domain"
	"github.com/vfg2006/meta-hourly-insights/pkg/utils"
)

//go:generate mockgen -source=report_file.go -destination=mocks/report_file_mock.go -package=mocks

type ReportFileRepository interface {
	Save(ctx context.Context, envelope *domain.OutputEnvelope) (string, error)
}

type reportFileRepository struct {
	dir string
}

func NewReportFileRepository(dir string) ReportFileRepository {
	return &reportFileRepository{dir: dir}
}

// ReportFileName devolve meta_<conta>_<data>.json
func ReportFileName(accountID, date string) string {
	return fmt.Sprintf("%s_%s_%s.json", domain.PlatformMeta, strings.TrimPrefix(accountID, "act_"), date)
}

// Save grava o envelope num arquivo temporário e o renomeia para o nome final,
// de modo que leitores nunca vejam um arquivo pela metade
func (r *reportFileRepository) Save(ctx context.Context, envelope *domain.OutputEnvelope) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório %s: %w", r.dir, err)
	}

	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("erro ao serializar envelope: %w", err)
	}

	suffix, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar id do arquivo temporário: %w", err)
	}

	finalPath := filepath.Join(r.dir, ReportFileName(envelope.Metadata.AccountID, envelope.Metadata.Date))
	tmpPath := fmt.Sprintf("%s.%s.tmp", finalPath, suffix)

	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar arquivo temporário: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("erro ao mover arquivo para %s: %w", finalPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":    finalPath,
		"records": envelope.Metadata.TotalRecords,
		"bytes":   len(data),
	}).Info("Relatório salvo")

	return finalPath, nil
}
