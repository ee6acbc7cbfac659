// Package binder connects HTTP requests to pkg/validator.
//
// Params collects the query string, chi route parameters and the request
// body into one map[string]any, which is the shape validators expect. JSON
// bodies are decoded with json.Decoder.UseNumber so integers keep full
// precision; urlencoded and multipart forms map single values to strings and
// repeated keys to lists; uploaded files are passed as *multipart.FileHeader.
//
// Validate wraps a handler:
//
//	createUser := validator.New("create_user", func(b *validator.Builder) {
//	    b.Field("name", validator.String())
//	    b.Field("age", validator.PositiveInt())
//	})
//
//	r := chi.NewRouter()
//	r.Use(i18n.Middleware(i18n.Default(), nil))
//	r.With(binder.Validate(createUser,
//	    binder.WithContextFunc(func(r *http.Request) validator.Context {
//	        return validator.Context{"is_admin": isAdmin(r)}
//	    }),
//	)).Post("/users", func(w http.ResponseWriter, r *http.Request) {
//	    params, _ := binder.Values(r.Context())
//	    // params["age"] is int64
//	})
//
// A failed validation responds 422 with the envelope under "errors":
//
//	{"errors": {"message": "Fields are not valid", "error_type": "fields",
//	  "field_errors": {"age": "This field is required."}}}
//
// Limits are read from BINDER_MAX_JSON_SIZE and BINDER_MAX_MEMORY via
// LoadConfig.
package binder
