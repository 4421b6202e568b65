// Package httpapi exposes the audit over HTTP with gin.
//
// Routes:
//
//	GET  /                  liveness text
//	GET  /healthz           {"status":"ok"}
//	POST /api/audit/upload  multipart field "image", responds with an audit report
//
// A request without an image gets 400 {"error":"no image provided"}. Any
// failure inside the audit gets 500 {"error":"server error during analysis"}
// and never a partial report.
package httpapi
