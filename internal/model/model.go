package model

// All lists the models in dependency order for migrations.
func All() []any {
	return []any{&User{}, &Task{}, &Comment{}}
}
