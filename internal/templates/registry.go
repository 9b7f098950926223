package templates

import "path"

// MarkerName is the file placed in every declared directory so each layer is
// an importable package and survives empty in version control.
const MarkerName = "__init__.py"

// MarkerContent is the body of every directory marker.
const MarkerContent = "# Auto-generated __init__.py\n"

// Dirs is the declared directory set, created in order before any artifact is
// written. Every entry receives a MarkerName file. Parents of artifact paths
// not listed here (e.g. infra/) are created on demand at write time.
var Dirs = []string{
	"src",
	"src/api",
	"src/api/v1",
	"src/api/v1/endpoints",
	"src/application",
	"src/domain",
	"src/infrastructure",
	"tests/api",
	"tests/application",
	"tests/domain",
	"tests/infrastructure",
}

// Registry holds every artifact in output order. Registering a new artifact
// means appending a (path, render) pair here; order is part of the contract
// so reports stay deterministic.
var Registry = []Artifact{
	{ID: "pyproject", Path: "pyproject.toml", Render: fromTemplate("pyproject", pyprojectTOML)},
	{ID: "requirements", Path: "requirements.txt", Render: static(requirementsTxt)},
	{ID: "requirements-tests", Path: "requirements-tests.txt", Render: static(requirementsTestsTxt)},
	{ID: "dockerfile", Path: "Dockerfile", Render: static(dockerfile)},
	{ID: "compose", Path: "infra/docker-compose.yml", Render: fromTemplate("compose", dockerCompose)},
	{ID: "makefile", Path: "Makefile", Render: static(makefile)},
	{ID: "gitignore", Path: ".gitignore", Render: static(gitignore)},
	{ID: "pytest-ini", Path: "pytest.ini", Render: static(pytestIni)},
	{ID: "importlinter", Path: ".importlinter", Render: static(importLinterCfg)},
	{ID: "ruff", Path: "ruff.toml", Render: static(ruffToml)},
	{ID: "precommit", Path: ".pre-commit-config.yaml", Render: static(preCommitConfig)},
	{ID: "env-example", Path: ".env.example", Render: static(envExample)},
	{ID: "env", Path: ".env", Render: static(envExample)},
	{ID: "main", Path: "src/main.py", Render: static(mainPy)},
	{ID: "config", Path: "src/config.py", Render: static(configPy)},
	{ID: "src-env", Path: "src/.env", Render: static(envExample)},
	{ID: "dependencies", Path: "src/api/v1/dependencies.py", Render: static(dependenciesPy)},
	{ID: "schemas", Path: "src/api/v1/schemas.py", Render: static(schemasPy)},
	{ID: "health-endpoint", Path: "src/api/v1/endpoints/health.py", Render: static(healthEndpointPy)},
	{ID: "test-health", Path: "tests/api/test_health.py", Render: static(testHealthPy)},
}

// List resolves the whole catalog against params, in registration order.
func List(p Params) []Rendered {
	out := make([]Rendered, 0, len(Registry))
	for _, a := range Registry {
		out = append(out, Rendered{Path: a.Path, Content: a.Render(p)})
	}
	return out
}

// MarkerPaths returns the marker file path for every declared directory.
func MarkerPaths() []string {
	out := make([]string, 0, len(Dirs))
	for _, d := range Dirs {
		out = append(out, path.Join(d, MarkerName))
	}
	return out
}
