package config

import "github.com/jeffrom/gitcommits/commit"

func GetDefault() Config {
	return Config{
		To:                 "HEAD",
		Backend:            BackendGit,
		NonConventionalKey: commit.DefaultNonConventionalKey,
	}
}
