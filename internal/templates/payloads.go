package templates

// Literal bodies of every generated file. The engine treats these as opaque
// text; only pyprojectTOML and dockerCompose substitute the project name.

const pyprojectTOML = `[project]
name = "{{.ProjectName}}"
version = "0.1.0"
description = "DDD FastAPI service"
requires-python = ">=3.11"
dependencies = [
  "fastapi[all]>=0.116.1",
  "pydantic>=2.3.0",
  "python-dotenv",
]

[tool.pytest.ini_options]
addopts = "-q"
testpaths = ["tests"]
`

const requirementsTxt = `fastapi[all]==0.116.1
pydantic>=2.3.0
python-dotenv
`

const requirementsTestsTxt = `-r requirements.txt
pytest==8.4.1
pytest-cov==6.2.1
pytest-mock==3.14.1
bandit==1.8.5
pip-audit==2.7.3
import-linter==2.3
ruff
`

const importLinterCfg = `[importlinter]
root_package = src

[importlinter:contract:layered-architecture]
name = Layered architecture
type = layers
layers =
    src.api
    src.infrastructure
    src.application
    src.domain
rules =
    src.api -> src.infrastructure
    src.infrastructure -> src.application
    src.application -> src.domain
`

const dockerfile = `# syntax=docker/dockerfile:1.4
FROM python:3.12-slim AS base
WORKDIR /app
COPY requirements.txt .
RUN --mount=type=cache,target=/root/.cache/pip \
    pip install --upgrade pip && pip install -r requirements.txt

FROM base AS final
COPY . .
EXPOSE 8000
CMD ["uvicorn", "src.main:app", "--host", "0.0.0.0", "--port", "8000"]
`

const dockerCompose = `services:
  app:
    build:
      context: ../
      dockerfile: Dockerfile
    container_name: {{.ProjectName}}-app
    ports:
      - "8000:8000"
    volumes:
      - ../:/app
    env_file:
      - ../.env
    command: uvicorn src.main:app --host 0.0.0.0 --port 8000 --reload
`

const makefile = `.PHONY: run test test-cov lint format precommit-install up down shell sec contracts clean-pyc

COMPOSE_DEV = docker compose -f infra/docker-compose.yml

run:
	uvicorn src.main:app --host 0.0.0.0 --port 8000 --reload

test:
	PYTHONPATH=. pytest -q

test-cov:
	PYTHONPATH=. pytest --cov=src --cov-report=term-missing

lint:
	ruff check --config=ruff.toml src/ --fix

format:
	ruff check --config=pyproject.toml src --fix --select I --exclude "migrations"
	ruff format src

precommit-install:
	python -m pip install pre-commit && pre-commit install

build:
	$(COMPOSE_DEV) build --no-cache

up:
	$(COMPOSE_DEV) up

down:
	$(COMPOSE_DEV) down

shell:
	$(COMPOSE_DEV) exec -it app bash

sec:
	bandit -r src && \
	pip-audit -r requirements-tests.txt

contracts:
	lint-imports

clean-pyc:
	find . -type d -name "__pycache__" -exec rm -rf {} +
	find . -type f -name "*.pyc" -delete
	find . -type f -name "*.pyo" -delete
`

const gitignore = `__pycache__/
*.pyc
.env
.venv/
.env.local
.cache/
htmlcov/
coverage.xml
.idea/
.vscode/
`

const pytestIni = `[pytest]
addopts = -ra -q
python_files = test_*.py
python_classes = Test*
testpaths = tests
`

const ruffToml = `line-length = 120

[lint]
select = [
    "ANN001", # missing-type-function-argument
    "ANN002", # missing-type-args
    "ANN003", # missing-type-kwargs
    "ANN201", # missing-return-type-undocumented-public-function
    "ANN202", # missing-return-type-private-function
    "ANN205", # missing-return-type-static-method
    "ANN206", # missing-return-type-class-method
    "ANN401", # any_type
    "B904",   # raise-without-from-inside-except
    "RSE102", # Unnecessary parentheses on raised exception
    "T20",    # print_found
    "TRY002", # raise-vanilla-class
    "C4",     # flake8-comprehensions
    "E",      # pycodestyle errors
    "F",      # pyflakes
    "I",      # isort
    "ICN",    # flake8-import-conventions
    "ISC",    # flake8-str-concat
    "RET",    # flake8-return
    "RUF",    # ruff
    "SIM",    # common simplification rules
    "UP",     # pyupgrade
    "W"       # pycodestyle warnings
]
`

const preCommitConfig = `repos:
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: v0.6.4
    hooks:
      - id: ruff
      - id: ruff-format
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.6.0
    hooks:
      - id: end-of-file-fixer
      - id: trailing-whitespace
`

const envExample = `# Example environment variables
APP_ENV=development
APP_DEBUG=true
`

const mainPy = `from fastapi import FastAPI
from src.api.v1.endpoints import health

app = FastAPI(title="DDD FastAPI Service")
app.include_router(health.router, prefix="/v1")
`

const configPy = `from pydantic import BaseSettings, SettingsConfigDict

class Settings(BaseSettings):
    app_env: str = "development"
    app_debug: bool = True

    model_config = SettingsConfigDict(env_file=".env", env_file_encoding="utf-8")

settings = Settings()
`

const dependenciesPy = `from fastapi import Depends

# Placeholder dependencies
def get_example_dep():
    return "dep"
`

const schemasPy = `from pydantic import BaseModel

class HealthResponse(BaseModel):
    status: str
`

const healthEndpointPy = `from fastapi import APIRouter
from src.api.v1.schemas import HealthResponse

router = APIRouter()

@router.get("/health", response_model=HealthResponse)
def health():
    return {"status": "ok"}
`

const testHealthPy = `from fastapi.testclient import TestClient
from src.main import app

client = TestClient(app)

def test_health():
    resp = client.get("/v1/health")
    assert resp.status_code == 200
    assert resp.json()["status"] == "ok"
`
