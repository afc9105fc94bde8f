package bibleref

// canonicalBooks is the 66-book Protestant canon in standard order. Chapter
// counts follow the KJV versification.
var canonicalBooks = []Book{
	{Name: "Genesis", Abbr: "Gen", Testament: OldTestament, Order: 1, Chapters: 50},
	{Name: "Exodus", Abbr: "Exod", Testament: OldTestament, Order: 2, Chapters: 40},
	{Name: "Leviticus", Abbr: "Lev", Testament: OldTestament, Order: 3, Chapters: 27},
	{Name: "Numbers", Abbr: "Num", Testament: OldTestament, Order: 4, Chapters: 36},
	{Name: "Deuteronomy", Abbr: "Deut", Testament: OldTestament, Order: 5, Chapters: 34},
	{Name: "Joshua", Abbr: "Josh", Testament: OldTestament, Order: 6, Chapters: 24},
	{Name: "Judges", Abbr: "Judg", Testament: OldTestament, Order: 7, Chapters: 21},
	{Name: "Ruth", Abbr: "Ruth", Testament: OldTestament, Order: 8, Chapters: 4},
	{Name: "1 Samuel", Abbr: "1 Sam", Testament: OldTestament, Order: 9, Chapters: 31},
	{Name: "2 Samuel", Abbr: "2 Sam", Testament: OldTestament, Order: 10, Chapters: 24},
	{Name: "1 Kings", Abbr: "1 Kgs", Testament: OldTestament, Order: 11, Chapters: 22},
	{Name: "2 Kings", Abbr: "2 Kgs", Testament: OldTestament, Order: 12, Chapters: 25},
	{Name: "1 Chronicles", Abbr: "1 Chr", Testament: OldTestament, Order: 13, Chapters: 29},
	{Name: "2 Chronicles", Abbr: "2 Chr", Testament: OldTestament, Order: 14, Chapters: 36},
	{Name: "Ezra", Abbr: "Ezra", Testament: OldTestament, Order: 15, Chapters: 10},
	{Name: "Nehemiah", Abbr: "Neh", Testament: OldTestament, Order: 16, Chapters: 13},
	{Name: "Esther", Abbr: "Esth", Testament: OldTestament, Order: 17, Chapters: 10},
	{Name: "Job", Abbr: "Job", Testament: OldTestament, Order: 18, Chapters: 42},
	{Name: "Psalms", Abbr: "Ps", Testament: OldTestament, Order: 19, Chapters: 150},
	{Name: "Proverbs", Abbr: "Prov", Testament: OldTestament, Order: 20, Chapters: 31},
	{Name: "Ecclesiastes", Abbr: "Eccl", Testament: OldTestament, Order: 21, Chapters: 12},
	{Name: "Song of Solomon", Abbr: "Song", Testament: OldTestament, Order: 22, Chapters: 8},
	{Name: "Isaiah", Abbr: "Isa", Testament: OldTestament, Order: 23, Chapters: 66},
	{Name: "Jeremiah", Abbr: "Jer", Testament: OldTestament, Order: 24, Chapters: 52},
	{Name: "Lamentations", Abbr: "Lam", Testament: OldTestament, Order: 25, Chapters: 5},
	{Name: "Ezekiel", Abbr: "Ezek", Testament: OldTestament, Order: 26, Chapters: 48},
	{Name: "Daniel", Abbr: "Dan", Testament: OldTestament, Order: 27, Chapters: 12},
	{Name: "Hosea", Abbr: "Hos", Testament: OldTestament, Order: 28, Chapters: 14},
	{Name: "Joel", Abbr: "Joel", Testament: OldTestament, Order: 29, Chapters: 3},
	{Name: "Amos", Abbr: "Amos", Testament: OldTestament, Order: 30, Chapters: 9},
	{Name: "Obadiah", Abbr: "Obad", Testament: OldTestament, Order: 31, Chapters: 1},
	{Name: "Jonah", Abbr: "Jonah", Testament: OldTestament, Order: 32, Chapters: 4},
	{Name: "Micah", Abbr: "Mic", Testament: OldTestament, Order: 33, Chapters: 7},
	{Name: "Nahum", Abbr: "Nah", Testament: OldTestament, Order: 34, Chapters: 3},
	{Name: "Habakkuk", Abbr: "Hab", Testament: OldTestament, Order: 35, Chapters: 3},
	{Name: "Zephaniah", Abbr: "Zeph", Testament: OldTestament, Order: 36, Chapters: 3},
	{Name: "Haggai", Abbr: "Hag", Testament: OldTestament, Order: 37, Chapters: 2},
	{Name: "Zechariah", Abbr: "Zech", Testament: OldTestament, Order: 38, Chapters: 14},
	{Name: "Malachi", Abbr: "Mal", Testament: OldTestament, Order: 39, Chapters: 4},
	{Name: "Matthew", Abbr: "Matt", Testament: NewTestament, Order: 40, Chapters: 28},
	{Name: "Mark", Abbr: "Mark", Testament: NewTestament, Order: 41, Chapters: 16},
	{Name: "Luke", Abbr: "Luke", Testament: NewTestament, Order: 42, Chapters: 24},
	{Name: "John", Abbr: "John", Testament: NewTestament, Order: 43, Chapters: 21},
	{Name: "Acts", Abbr: "Acts", Testament: NewTestament, Order: 44, Chapters: 28},
	{Name: "Romans", Abbr: "Rom", Testament: NewTestament, Order: 45, Chapters: 16},
	{Name: "1 Corinthians", Abbr: "1 Cor", Testament: NewTestament, Order: 46, Chapters: 16},
	{Name: "2 Corinthians", Abbr: "2 Cor", Testament: NewTestament, Order: 47, Chapters: 13},
	{Name: "Galatians", Abbr: "Gal", Testament: NewTestament, Order: 48, Chapters: 6},
	{Name: "Ephesians", Abbr: "Eph", Testament: NewTestament, Order: 49, Chapters: 6},
	{Name: "Philippians", Abbr: "Phil", Testament: NewTestament, Order: 50, Chapters: 4},
	{Name: "Colossians", Abbr: "Col", Testament: NewTestament, Order: 51, Chapters: 4},
	{Name: "1 Thessalonians", Abbr: "1 Thess", Testament: NewTestament, Order: 52, Chapters: 5},
	{Name: "2 Thessalonians", Abbr: "2 Thess", Testament: NewTestament, Order: 53, Chapters: 3},
	{Name: "1 Timothy", Abbr: "1 Tim", Testament: NewTestament, Order: 54, Chapters: 6},
	{Name: "2 Timothy", Abbr: "2 Tim", Testament: NewTestament, Order: 55, Chapters: 4},
	{Name: "Titus", Abbr: "Titus", Testament: NewTestament, Order: 56, Chapters: 3},
	{Name: "Philemon", Abbr: "Phlm", Testament: NewTestament, Order: 57, Chapters: 1},
	{Name: "Hebrews", Abbr: "Heb", Testament: NewTestament, Order: 58, Chapters: 13},
	{Name: "James", Abbr: "Jas", Testament: NewTestament, Order: 59, Chapters: 5},
	{Name: "1 Peter", Abbr: "1 Pet", Testament: NewTestament, Order: 60, Chapters: 5},
	{Name: "2 Peter", Abbr: "2 Pet", Testament: NewTestament, Order: 61, Chapters: 3},
	{Name: "1 John", Abbr: "1 John", Testament: NewTestament, Order: 62, Chapters: 5},
	{Name: "2 John", Abbr: "2 John", Testament: NewTestament, Order: 63, Chapters: 1},
	{Name: "3 John", Abbr: "3 John", Testament: NewTestament, Order: 64, Chapters: 1},
	{Name: "Jude", Abbr: "Jude", Testament: NewTestament, Order: 65, Chapters: 1},
	{Name: "Revelation", Abbr: "Rev", Testament: NewTestament, Order: 66, Chapters: 22},
}

// Alias maps an alternate spelling to a book by canonical name. Curated aliases
// layer on top of the identity aliases at table build time; an entry naming an
// unknown book is dropped, and an entry colliding with an earlier registration
// never shadows it.
type Alias struct {
	Alias string
	Book  string
}

// curatedAliases holds the historical and common abbreviations that are not
// already covered by a book's canonical name or abbreviation. Order matters:
// suggestion scanning walks this slice as registered.
var curatedAliases = []Alias{
	{"ge", "Genesis"}, {"gn", "Genesis"},
	{"ex", "Exodus"}, {"exo", "Exodus"},
	{"le", "Leviticus"}, {"lv", "Leviticus"},
	{"nu", "Numbers"}, {"nm", "Numbers"}, {"nb", "Numbers"},
	{"de", "Deuteronomy"}, {"dt", "Deuteronomy"},
	{"jos", "Joshua"}, {"jsh", "Joshua"},
	{"jdg", "Judges"}, {"jg", "Judges"}, {"jdgs", "Judges"},
	{"rth", "Ruth"}, {"ru", "Ruth"},
	{"1 sa", "1 Samuel"}, {"1 sm", "1 Samuel"}, {"i sam", "1 Samuel"}, {"i samuel", "1 Samuel"},
	{"2 sa", "2 Samuel"}, {"2 sm", "2 Samuel"}, {"ii sam", "2 Samuel"}, {"ii samuel", "2 Samuel"},
	{"1 ki", "1 Kings"}, {"1 kin", "1 Kings"}, {"i kgs", "1 Kings"}, {"i kings", "1 Kings"},
	{"2 ki", "2 Kings"}, {"2 kin", "2 Kings"}, {"ii kgs", "2 Kings"}, {"ii kings", "2 Kings"},
	{"1 ch", "1 Chronicles"}, {"i chr", "1 Chronicles"}, {"i chronicles", "1 Chronicles"},
	{"2 ch", "2 Chronicles"}, {"ii chr", "2 Chronicles"}, {"ii chronicles", "2 Chronicles"},
	{"ezr", "Ezra"},
	{"ne", "Nehemiah"},
	{"es", "Esther"}, {"est", "Esther"},
	{"jb", "Job"},
	{"psa", "Psalms"}, {"psalm", "Psalms"}, {"pss", "Psalms"},
	{"pro", "Proverbs"}, {"prv", "Proverbs"}, {"pr", "Proverbs"},
	{"ecc", "Ecclesiastes"}, {"ec", "Ecclesiastes"}, {"qoh", "Ecclesiastes"},
	{"sos", "Song of Solomon"}, {"song of songs", "Song of Solomon"}, {"canticles", "Song of Solomon"}, {"cant", "Song of Solomon"},
	{"is", "Isaiah"},
	{"jr", "Jeremiah"}, {"jere", "Jeremiah"},
	{"la", "Lamentations"},
	{"eze", "Ezekiel"}, {"ezk", "Ezekiel"},
	{"da", "Daniel"}, {"dn", "Daniel"},
	{"ho", "Hosea"},
	{"jl", "Joel"}, {"joe", "Joel"},
	{"am", "Amos"},
	{"ob", "Obadiah"}, {"oba", "Obadiah"},
	{"jon", "Jonah"}, {"jnh", "Jonah"},
	{"mc", "Micah"},
	{"na", "Nahum"}, {"nam", "Nahum"},
	{"zep", "Zephaniah"}, {"zp", "Zephaniah"},
	{"hg", "Haggai"},
	{"zec", "Zechariah"}, {"zc", "Zechariah"},
	{"ml", "Malachi"},
	{"mt", "Matthew"},
	{"mk", "Mark"}, {"mr", "Mark"}, {"mrk", "Mark"},
	{"lk", "Luke"},
	{"jn", "John"}, {"jhn", "John"},
	{"ac", "Acts"},
	{"ro", "Romans"}, {"rm", "Romans"},
	{"1 co", "1 Corinthians"}, {"i cor", "1 Corinthians"}, {"i corinthians", "1 Corinthians"},
	{"2 co", "2 Corinthians"}, {"ii cor", "2 Corinthians"}, {"ii corinthians", "2 Corinthians"},
	{"ga", "Galatians"},
	{"ephes", "Ephesians"},
	{"php", "Philippians"},
	{"1 th", "1 Thessalonians"}, {"i thess", "1 Thessalonians"},
	{"2 th", "2 Thessalonians"}, {"ii thess", "2 Thessalonians"},
	{"1 ti", "1 Timothy"}, {"1 tm", "1 Timothy"}, {"i tim", "1 Timothy"},
	{"2 ti", "2 Timothy"}, {"2 tm", "2 Timothy"}, {"ii tim", "2 Timothy"},
	{"tit", "Titus"},
	{"phm", "Philemon"}, {"philem", "Philemon"},
	{"jm", "James"},
	{"1 pe", "1 Peter"}, {"1 pt", "1 Peter"}, {"i pet", "1 Peter"},
	{"2 pe", "2 Peter"}, {"2 pt", "2 Peter"}, {"ii pet", "2 Peter"},
	{"1 jn", "1 John"}, {"i john", "1 John"},
	{"2 jn", "2 John"}, {"ii john", "2 John"},
	{"3 jn", "3 John"}, {"iii john", "3 John"},
	{"jud", "Jude"}, {"jd", "Jude"},
	{"apocalypse", "Revelation"}, {"the revelation", "Revelation"},
}
