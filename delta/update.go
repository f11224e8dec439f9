// File: update.go
// Role: incremental node/edge graphlet-count deltas.
package delta

import (
	"sort"

	"github.com/ninsei-dev/graiph/graph"
	"github.com/ninsei-dev/graiph/graphlet"
)

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}

func sortedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}

func sortedTriple(a, b, c int) [3]int {
	s := []int{a, b, c}
	sort.Ints(s)

	return [3]int{s[0], s[1], s[2]}
}

func sortedQuad(a, b, c, d int) [4]int {
	s := []int{a, b, c, d}
	sort.Ints(s)

	return [4]int{s[0], s[1], s[2], s[3]}
}

// UpdateNode computes the graphlet-count delta induced by adding (or, by
// symmetry, removing) vertex n1 and its incident edges. g must already
// contain n1 and its edges (for an add) or still contain them (for a
// remove, where the caller negates the result). classNames/codeToClass
// must be one of (graphlet.ClassNames3, graphlet.CodeToClass3),
// (ClassNames4, CodeToClass4) or (ClassNames5, CodeToClass5); the
// returned slice has the same length and order as classNames.
// Complexity: bounded by the degrees of n1's extended neighbourhood.
func UpdateNode(g *graph.Graph, n1 int, classNames []string, codeToClass map[int]string) ([]int64, error) {
	n := len(classNames)
	if n != 2 && n != 8 && n != 29 {
		return nil, ErrGraphletSizeUnsupported
	}

	deltaCounts := make([]int64, n)
	blacklist3 := make(map[[2]int]struct{})
	blacklist4 := make(map[[3]int]struct{})
	blacklist5 := make(map[[4]int]struct{})

	nbrs1, err := g.Neighbors(n1)
	if err != nil {
		return nil, err
	}

	for _, n2 := range nbrs1 {
		for _, s1 := range [2]int{n1, n2} {
			nbrsS1, _ := g.Neighbors(s1)
			for _, n3 := range nbrsS1 {
				if n3 == n1 || n3 == n2 {
					continue
				}
				key3 := sortedPair(n2, n3)
				if _, seen := blacklist3[key3]; seen {
					continue
				}

				new3 := graphlet.GetCode(g.HasEdge, []int{n1, n2, n3})
				if idx := indexOf(classNames, codeToClass[new3]); idx >= 0 {
					deltaCounts[idx]++
				}
				blacklist3[key3] = struct{}{}

				if n == 2 {
					continue
				}

				for _, s2 := range [3]int{n1, n2, n3} {
					nbrsS2, _ := g.Neighbors(s2)
					for _, n4 := range nbrsS2 {
						if n4 == n1 || n4 == n2 || n4 == n3 {
							continue
						}
						key4 := sortedTriple(n2, n3, n4)
						if _, seen := blacklist4[key4]; seen {
							continue
						}

						new4 := graphlet.UpdateCode(new3, g.HasEdge, []int{n1, n2, n3, n4})
						if idx := indexOf(classNames, codeToClass[new4]); idx >= 0 {
							deltaCounts[idx]++
						}
						blacklist4[key4] = struct{}{}

						if n == 8 {
							continue
						}

						for _, s3 := range [4]int{n1, n2, n3, n4} {
							nbrsS3, _ := g.Neighbors(s3)
							for _, n5 := range nbrsS3 {
								if n5 == n1 || n5 == n2 || n5 == n3 || n5 == n4 {
									continue
								}
								key5 := sortedQuad(n2, n3, n4, n5)
								if _, seen := blacklist5[key5]; seen {
									continue
								}

								new5 := graphlet.UpdateCode(new4, g.HasEdge, []int{n1, n2, n3, n4, n5})
								if idx := indexOf(classNames, codeToClass[new5]); idx >= 0 {
									deltaCounts[idx]++
								}
								blacklist5[key5] = struct{}{}
							}
						}
					}
				}
			}
		}
	}

	return deltaCounts, nil
}

// UpdateEdge computes the graphlet-count delta induced by adding (or
// removing) edge {n1,n2}. g must be the graph BEFORE the change: every
// subgraph straddling the toggled edge is classified twice, once as it
// is in g (subtracted) and once with the edge toggled (added), so the
// result is already signed for either direction.
// Complexity: bounded by the degrees of n1/n2's extended neighbourhood.
func UpdateEdge(g *graph.Graph, n1, n2 int, classNames []string, codeToClass map[int]string) ([]int64, error) {
	n := len(classNames)
	if n != 2 && n != 8 && n != 29 {
		return nil, ErrGraphletSizeUnsupported
	}

	deltaCounts := make([]int64, n)
	blacklist3 := make(map[int]struct{})
	blacklist4 := make(map[[2]int]struct{})
	blacklist5 := make(map[[3]int]struct{})

	apply := func(code int) {
		if name, ok := codeToClass[code]; ok {
			if idx := indexOf(classNames, name); idx >= 0 {
				deltaCounts[idx]--
			}
		}
		if name, ok := codeToClass[code^1]; ok {
			if idx := indexOf(classNames, name); idx >= 0 {
				deltaCounts[idx]++
			}
		}
	}

	for _, s1 := range [2]int{n1, n2} {
		nbrsS1, _ := g.Neighbors(s1)
		for _, n3 := range nbrsS1 {
			if n3 == n1 || n3 == n2 {
				continue
			}
			if _, seen := blacklist3[n3]; seen {
				continue
			}

			old3 := graphlet.GetCode(g.HasEdge, []int{n1, n2, n3})
			apply(old3)
			blacklist3[n3] = struct{}{}

			if n == 2 {
				continue
			}

			for _, s2 := range [3]int{n1, n2, n3} {
				nbrsS2, _ := g.Neighbors(s2)
				for _, n4 := range nbrsS2 {
					if n4 == n1 || n4 == n2 || n4 == n3 {
						continue
					}
					key4 := sortedPair(n3, n4)
					if _, seen := blacklist4[key4]; seen {
						continue
					}

					old4 := graphlet.UpdateCode(old3, g.HasEdge, []int{n1, n2, n3, n4})
					apply(old4)
					blacklist4[key4] = struct{}{}

					if n == 8 {
						continue
					}

					for _, s3 := range [4]int{n1, n2, n3, n4} {
						nbrsS3, _ := g.Neighbors(s3)
						for _, n5 := range nbrsS3 {
							if n5 == n1 || n5 == n2 || n5 == n3 || n5 == n4 {
								continue
							}
							key5 := sortedTriple(n3, n4, n5)
							if _, seen := blacklist5[key5]; seen {
								continue
							}

							old5 := graphlet.UpdateCode(old4, g.HasEdge, []int{n1, n2, n3, n4, n5})
							apply(old5)
							blacklist5[key5] = struct{}{}
						}
					}
				}
			}
		}
	}

	return deltaCounts, nil
}
