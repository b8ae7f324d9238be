// Package relmap binds domain models to relational storage through an
// explicit mapping topology. An Environment owns named repository bindings,
// a registry of model mappers and a shared relation graph; the lifecycle is
// setup, build, finalize:
//
//	env, err := relmap.NewEnvironment().Setup("default", "postgres://app@localhost/app")
//	if err != nil {
//		// ...
//	}
//	_, err = env.Build("User", "default", mapping.New().Key("id"))
//	_, err = env.Build("Post", "default", mapping.New().
//		Key("id").
//		Relationship(mapping.BelongsTo("author", "User").On("user_id")))
//	if err := env.Finalize(); err != nil {
//		// ...
//	}
//
// Finalize resolves every declared relationship into a connector on the
// graph, all or nothing: a single unresolved target or connector-name
// collision aborts the pass with the graph untouched, so it can be re-run
// after the declaration is fixed. Once finalized, the environment flag never
// reverts and further Finalize calls are no-ops.
//
// Setup, Build and Finalize are startup-time operations and are not safe for
// concurrent use; serialize them externally. After finalization the graph
// and its read accessors, which return detached copies, may be shared
// freely.
package relmap
