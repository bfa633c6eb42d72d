package main

// General API documentation for swaggo. Regenerate with `swag init`.
//
// @title           bookmarkd API
// @version         1.0
// @description     Local HTTP API for LLM-based code bookmark annotations.
//
// @BasePath  /
//
// @schemes http
