package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"webprompt_server/config"
	"webprompt_server/internal/logger"
)

// maxTables caps how many table names the probe reports.
const maxTables = 10

// Status is a point-in-time snapshot of the optional datastore, with every
// failure already absorbed into text. Consumers render it; they never have
// an error to handle.
type Status struct {
	Configured bool     // DATABASE_URL was set at startup
	Connected  bool     // handle is open and answered the probe
	Err        string   // failure detail when degraded, empty otherwise
	Tables     []string // up to maxTables table names when connected
}

// PostgresService wraps the optional datastore handle. The backend never
// requires it; the only consumer is the /test diagnostic endpoint.
type PostgresService struct {
	db         *gorm.DB
	configured bool
	openErr    error
	log        *logger.Logger
}

// NewPostgresService attempts to acquire a datastore handle. The datastore is
// strictly optional, so failures are recorded for Status to report and never
// returned: a missing or unreachable database must not affect startup.
func NewPostgresService(cfg config.Config, log *logger.Logger) *PostgresService {
	svc := &PostgresService{log: log.With("service", "PostgresService")}
	if cfg.DatabaseURL == "" {
		svc.log.Info("DATABASE_URL not set, datastore probe disabled")
		return svc
	}
	svc.configured = true

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		svc.openErr = err
		svc.log.Warn("Datastore connection failed; probe will report the error", "error", err)
		return svc
	}
	svc.db = gdb
	svc.log.Info("Datastore connection established")
	return svc
}

// Status probes the datastore and folds every possible failure into the
// returned snapshot. It never returns an error and never panics outward;
// diagnostics must degrade, not fail.
func (s *PostgresService) Status(ctx context.Context) (st Status) {
	defer func() {
		if r := recover(); r != nil {
			st.Connected = false
			st.Err = fmt.Sprint(r)
			st.Tables = nil
		}
	}()

	if s == nil || !s.configured {
		return st
	}
	st.Configured = true

	if s.openErr != nil {
		st.Err = s.openErr.Error()
		return st
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err != nil {
		st.Err = err.Error()
		return st
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		st.Err = err.Error()
		return st
	}
	st.Connected = true

	tables, err := s.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		// Connected but not fully usable; report the partial state.
		st.Err = err.Error()
		return st
	}
	if len(tables) > maxTables {
		tables = tables[:maxTables]
	}
	st.Tables = tables
	return st
}
