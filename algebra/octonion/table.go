package octonion

// fanoLines are the seven lines of the Fano plane over the imaginary
// basis indices 1..7. Each line (a, b, c) is oriented: products follow
// the cycle a→b→c with sign +1 and pick up -1 against it. The first
// line makes (e1, e2, e4) a quaternion subalgebra.
var fanoLines = [7][3]int{
	{1, 2, 4},
	{2, 3, 5},
	{3, 4, 6},
	{4, 5, 7},
	{5, 6, 1},
	{6, 7, 2},
	{7, 1, 3},
}

// mulSign and mulIndex define the basis product e_i·e_j = mulSign[i][j] ·
// e_{mulIndex[i][j]}. Index 0 is the real unit. The table is filled once
// at init from fanoLines; every ordered pair is covered because the seven
// lines partition the 21 unordered imaginary pairs.
var (
	mulSign  [8][8]int32
	mulIndex [8][8]int
)

func init() {
	for j := 0; j < 8; j++ {
		mulSign[0][j], mulIndex[0][j] = 1, j
		mulSign[j][0], mulIndex[j][0] = 1, j
	}
	for i := 1; i < 8; i++ {
		mulSign[i][i], mulIndex[i][i] = -1, 0
	}
	for _, l := range fanoLines {
		for k := 0; k < 3; k++ {
			a, b, c := l[k], l[(k+1)%3], l[(k+2)%3]
			mulSign[a][b], mulIndex[a][b] = 1, c
			mulSign[b][a], mulIndex[b][a] = -1, c
		}
	}
}
