// Marquee - Movie Catalog Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package config loads Marquee's configuration with koanf.

Sources are layered, later ones winning:

  - built-in defaults (structs provider)
  - an optional YAML file: CONFIG_PATH, config.yaml, config.yml or /etc/marquee/config.yaml
  - environment variables, mapped explicitly by name

Environment variables:

Document store:
  - MONGO_URI: connection string (default: mongodb://localhost:27017)
  - MONGO_DATABASE: database name (default: movielens)
  - MONGO_COLLECTION: collection name (default: movies)
  - MONGO_CONNECT_TIMEOUT: connect and ping timeout (default: 10s)
  - MONGO_QUERY_TIMEOUT: per-query timeout, 0 for none (default: 0)
  - SEED_MOCK_DATA: insert sample movies into an empty collection (default: false)

HTTP server:
  - PORT or HTTP_PORT: listen port (default: 4000)
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - ENVIRONMENT: development, production or test (default: development)

Admin and sessions:
  - ADMIN_USERNAME: admin login name (default: admin)
  - ADMIN_PASSWORD: admin password, hashed with bcrypt at startup (default: password123)
  - ADMIN_PASSWORD_HASH: precomputed bcrypt hash, overrides ADMIN_PASSWORD
  - SESSION_STORE: memory or badger (default: memory)
  - SESSION_STORE_PATH: BadgerDB directory (default: /data/sessions)
  - SESSION_TTL: session lifetime (default: 24h)
  - SESSION_COOKIE_NAME: cookie name (default: marquee_session)
  - SESSION_COOKIE_SECURE: set the Secure cookie attribute (default: false)
  - LOGIN_RATE_LIMIT: login attempts per window per IP, 0 disables (default: 10)
  - LOGIN_RATE_WINDOW: login rate window (default: 1m)
  - CORS_ORIGINS: comma-separated allowed origins for static assets
  - TRUST_PROXY_HEADERS: take the client IP from forwarding headers; enable
    only behind a reverse proxy that sets them (default: false)

Files:
  - STATIC_DIR: static asset root (default: public)
  - UPLOAD_DIR: upload destination (default: public/images)
  - UPLOAD_MAX_BYTES: upload request cap (default: 10485760)
  - TEMPLATE_DIR: directory overriding the embedded view templates

Logging:
  - LOG_LEVEL, LOG_FORMAT (json or console), LOG_CALLER
*/
package config
