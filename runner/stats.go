package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func newStats() *Stats {
	return &Stats{Counts: make(map[string][]*statCount)}
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

// Count returns the total recorded for name in bucket.
func (s *Stats) Count(bucket, name string) int64 {
	if c, found := s.findCount(name, s.Counts[bucket]); found {
		return c.n
	}
	return 0
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, 0, len(s.Counts))
	for name := range s.Counts {
		buckets = append(buckets, name)
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits\n\n", s.Commits))

	for _, name := range s.sortedBuckets() {
		counts := s.Counts[name]
		sort.SliceStable(counts, func(i, j int) bool {
			if counts[i].n == counts[j].n {
				return counts[i].label < counts[j].label
			}
			return counts[i].n > counts[j].n
		})
		bw.WriteString(fmt.Sprintf("%s:\n", toTitle(name)))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%d\n", label, count.n))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats counts the commits in the configured range by type, scope, author
// and breaking status. Co-authors count toward the author bucket.
func (r *Runner) Stats(ctx context.Context) *Stats {
	commits := r.Commits(ctx)
	stats := newStats()
	stats.Commits = int64(len(commits))

	nonConventionalKey := r.cfg.NonConventionalKey
	for _, c := range commits {
		typ := nonConventionalKey
		if c.IsConventional {
			typ = strings.ToLower(c.Type)
		}
		stats.Add("type", typ, 1)
		stats.Add("scope", c.ScopeName(), 1)
		for _, author := range c.Authors {
			stats.Add("author", fmt.Sprintf("%s <%s>", author.Name, author.Email), 1)
		}
		breaking := "no"
		if c.IsBreaking {
			breaking = "yes"
		}
		stats.Add("breaking", breaking, 1)
	}
	return stats
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return cases.Title(language.English).String(s)
}
