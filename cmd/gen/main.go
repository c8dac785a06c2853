package main

import (
	"cabby/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.TaxiModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
