package analysis

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// sentimentLexicon maps lower-cased English adjectives/adverbs to scores.
var sentimentLexicon = map[string]lexiconEntry{
	// positive
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"excellent":    {1.0, 1.0},
	"best":         {1.0, 0.3},
	"better":       {0.5, 0.5},
	"outstanding":  {0.5, 0.75},
	"wonderful":    {1.0, 1.0},
	"amazing":      {0.6, 0.9},
	"awesome":      {1.0, 1.0},
	"beautiful":    {0.85, 1.0},
	"brilliant":    {0.9, 1.0},
	"happy":        {0.8, 1.0},
	"love":         {0.5, 0.6},
	"loved":        {0.7, 0.8},
	"nice":         {0.6, 1.0},
	"positive":     {0.23, 0.55},
	"successful":   {0.75, 0.95},
	"success":      {0.3, 0.4},
	"famous":       {0.5, 1.0},
	"popular":      {0.6, 0.8},
	"important":    {0.4, 1.0},
	"significant":  {0.38, 0.88},
	"notable":      {0.5, 0.6},
	"remarkable":   {0.75, 0.75},
	"influential":  {0.4, 0.6},
	"prominent":    {0.4, 0.6},
	"major":        {0.06, 0.5},
	"strong":       {0.43, 0.73},
	"peaceful":     {0.25, 0.5},
	"free":         {0.4, 0.8},
	"fair":         {0.7, 0.9},
	"honest":       {0.6, 0.9},
	"interesting":  {0.5, 0.5},
	"impressive":   {1.0, 1.0},
	"perfect":      {1.0, 1.0},
	"fantastic":    {0.4, 0.9},
	"superb":       {1.0, 1.0},
	"glad":         {0.5, 1.0},
	"pleasant":     {0.73, 0.97},
	"fine":         {0.42, 0.5},
	"win":          {0.8, 0.4},
	"won":          {0.5, 0.3},
	"award":        {0.3, 0.2},
	"acclaimed":    {0.6, 0.7},
	"celebrated":   {0.5, 0.6},
	"innovative":   {0.5, 0.8},
	"first":        {0.25, 0.33},
	"largest":      {0.2, 0.4},
	"greatest":     {1.0, 1.0},
	"rich":         {0.38, 0.75},
	"safe":         {0.5, 0.5},
	"modern":       {0.2, 0.3},
	"powerful":     {0.3, 1.0},
	"effective":    {0.6, 0.8},
	"easy":         {0.43, 0.83},
	// negative
	"bad":          {-0.7, 0.67},
	"worse":        {-0.4, 0.6},
	"worst":        {-1.0, 1.0},
	"terrible":     {-1.0, 1.0},
	"horrible":     {-1.0, 1.0},
	"awful":        {-1.0, 1.0},
	"poor":         {-0.4, 0.6},
	"sad":          {-0.5, 1.0},
	"hate":         {-0.8, 0.9},
	"angry":        {-0.5, 1.0},
	"wrong":        {-0.5, 0.9},
	"negative":     {-0.3, 0.4},
	"difficult":    {-0.5, 1.0},
	"hard":         {-0.29, 0.54},
	"dangerous":    {-0.6, 0.9},
	"violent":      {-0.8, 1.0},
	"war":          {-0.4, 0.4},
	"death":        {-0.3, 0.3},
	"dead":         {-0.2, 0.4},
	"killed":       {-0.2, 0.3},
	"failed":       {-0.5, 0.3},
	"failure":      {-0.32, 0.3},
	"crisis":       {-0.4, 0.5},
	"disputed":     {-0.2, 0.6},
	"corrupt":      {-0.5, 0.5},
	"illegal":      {-0.5, 0.5},
	"weak":         {-0.38, 0.63},
	"ugly":         {-0.7, 1.0},
	"boring":       {-1.0, 1.0},
	"stupid":       {-0.8, 1.0},
	"disastrous":   {-0.85, 0.9},
	"tragic":       {-0.75, 0.75},
	"severe":       {-0.4, 0.6},
	"serious":      {-0.33, 0.67},
	"unfortunate":  {-0.5, 1.0},
	"unpopular":    {-0.4, 0.6},
	"criticized":   {-0.3, 0.6},
	"poorly":       {-0.4, 0.6},
	"evil":         {-1.0, 1.0},
	"cruel":        {-1.0, 1.0},
}

// intensifiers scale the score of the word that follows them.
var intensifiers = map[string]float64{
	"very":         1.3,
	"really":       1.3,
	"extremely":    1.5,
	"highly":       1.3,
	"most":         1.2,
	"so":           1.2,
	"incredibly":   1.5,
	"particularly": 1.2,
	"quite":        1.1,
	"somewhat":     0.8,
	"slightly":     0.7,
}

var negations = toSet([]string{
	"not", "no", "never", "neither", "nor", "without", "hardly",
	"don't", "doesn't", "didn't", "isn't", "wasn't", "aren't", "weren't",
	"can't", "cannot", "couldn't", "won't", "wouldn't", "shouldn't",
})
