package usecase

import (
	"context"
	"strings"

	"github.com/rahmatrdn/go-pg-manager/entity"
	"go.uber.org/zap"
)

func (u *consoleUsecase) CreateTable(ctx context.Context, schema, table string, columns []entity.ColumnDefinition) (*entity.ExecResult, error) {
	if err := requireNames(map[string]string{"schema": schema, "table": table}); err != nil {
		return nil, err
	}
	for i := range columns {
		if columns[i].Name == "" {
			continue
		}
		if err := u.validator.Validate(columns[i]); err != nil {
			return nil, err
		}
	}

	statement := BuildCreateTable(schema, table, columns)
	if statement == "" {
		return nil, entity.NewValidationError("columns", "define at least one column")
	}
	return u.executeDDL(ctx, schema, statement, true)
}

func (u *consoleUsecase) AddColumn(ctx context.Context, schema, table string, column entity.ColumnDefinition) (*entity.ExecResult, error) {
	if err := requireNames(map[string]string{"schema": schema, "table": table, "name": column.Name}); err != nil {
		return nil, err
	}
	if err := u.validator.Validate(column); err != nil {
		return nil, err
	}
	return u.executeDDL(ctx, schema, BuildAddColumn(schema, table, column), false)
}

func (u *consoleUsecase) RenameTable(ctx context.Context, schema, table, newName string) (*entity.ExecResult, error) {
	if err := requireNames(map[string]string{"schema": schema, "table": table, "new_name": newName}); err != nil {
		return nil, err
	}
	return u.executeDDL(ctx, schema, BuildRenameTable(schema, table, newName), true)
}

func (u *consoleUsecase) AddIndex(ctx context.Context, schema, table string, index entity.IndexDefinition) (*entity.ExecResult, error) {
	if err := requireNames(map[string]string{"schema": schema, "table": table}); err != nil {
		return nil, err
	}
	if err := u.validator.Validate(index); err != nil {
		return nil, err
	}
	return u.executeDDL(ctx, schema, BuildAddIndex(schema, table, index), false)
}

// DropTable requires confirm to repeat the table name.
func (u *consoleUsecase) DropTable(ctx context.Context, schema, table, confirm string) (*entity.ExecResult, error) {
	if err := requireNames(map[string]string{"schema": schema, "table": table}); err != nil {
		return nil, err
	}
	if confirm != table {
		return nil, entity.NewValidationError("confirm", "table name doesn't match, type the table name to confirm")
	}
	return u.executeDDL(ctx, schema, BuildDropTable(schema, table), true)
}

func (u *consoleUsecase) executeDDL(ctx context.Context, schema, statement string, refreshTables bool) (*entity.ExecResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	res, err := u.execute(ctx, statement)
	if err != nil || !res.Success || !refreshTables {
		return res, err
	}

	if _, err := u.listTables(ctx, schema); err != nil {
		u.log.Warn("refreshing tables after ddl", zap.String("schema", schema), zap.Error(err))
	}
	return res, nil
}

func requireNames(fields map[string]string) error {
	missing := map[string]string{}
	for field, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing[field] = field + " is a required field"
		}
	}
	if len(missing) > 0 {
		return &entity.ValidationError{Fields: missing}
	}
	return nil
}
