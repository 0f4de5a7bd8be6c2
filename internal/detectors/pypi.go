package detectors

var pypiToken = Rule{Type: "pypi_token", Label: "PyPI", Pattern: `pypi-[A-Za-z0-9_-]{50,220}`}
