// Package environment names the deployment environment and carries it
// through request contexts.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	router.Use(environment.Middleware(env))
//	if environment.IsProduction(r.Context()) { ... }
package environment
