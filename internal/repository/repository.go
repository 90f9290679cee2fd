package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"continuum-server/internal/models"
)

// DBTX покрывает и *pgxpool.Pool, и pgx.Tx: репозитории не знают,
// выполняются они в транзакции или напрямую на пуле.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProjectRepository управляет проектами.
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
}

// AssetFilter — параметры выборки списка ассетов.
type AssetFilter struct {
	ProjectID *int64
	Type      *models.AssetType
	IsGlobal  *bool
}

// AssetRepository управляет ассетами и выполняет поиск для разрешения ссылок.
type AssetRepository interface {
	List(ctx context.Context, filter AssetFilter) ([]models.Asset, error)
	GetByID(ctx context.Context, id int64) (*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id int64) error

	// FindVisibleByName ищет ассет по имени без учета регистра среди ассетов
	// проекта и глобальных. При нескольких совпадениях детерминированно
	// побеждает наименьший id. Отсутствие совпадений — (nil, nil), не ошибка.
	FindVisibleByName(ctx context.Context, name string, projectID int64) (*models.Asset, error)

	// FindGlobalByTypeAndName ищет глобальный ассет заданного типа по имени.
	// Нужен политике стиля по умолчанию на уровне HTTP-обработчика.
	FindGlobalByTypeAndName(ctx context.Context, assetType models.AssetType, name string) (*models.Asset, error)
}

// VariantRepository управляет вариантами ассетов.
type VariantRepository interface {
	ListByAsset(ctx context.Context, assetID int64) ([]models.Variant, error)
	GetByID(ctx context.Context, id int64) (*models.Variant, error)
	Create(ctx context.Context, variant *models.Variant) error
	Update(ctx context.Context, variant *models.Variant) error
	Delete(ctx context.Context, id int64) error

	// FindByName ищет вариант ассета по имени без учета регистра.
	// Отсутствие совпадений — (nil, nil), не ошибка.
	FindByName(ctx context.Context, assetID int64, name string) (*models.Variant, error)
}

// SceneRepository управляет сценами.
type SceneRepository interface {
	List(ctx context.Context, projectID *int64) ([]models.Scene, error)
	GetByID(ctx context.Context, id int64) (*models.Scene, error)
	Create(ctx context.Context, scene *models.Scene) error
	Update(ctx context.Context, scene *models.Scene) error
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository — хранилище настроек ключ-значение.
type SettingsRepository interface {
	// GetValue возвращает значение ключа; для отсутствующего ключа —
	// models.ErrNotFound.
	GetValue(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}
