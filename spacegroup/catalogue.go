package spacegroup

// entry binds a catalogue number and Hermann–Mauguin short symbol to the Hall
// symbol from which the operations are generated.
type entry struct {
	number  int
	symbol  string
	hall    string
	setting Setting
}

// standard holds the default setting of every group, indexed by number-1:
// b-unique cell choice 1 for monoclinic groups, origin choice 1 where two
// origins exist, hexagonal axes for the rhombohedral groups.
var standard = [230]entry{
	{1, "P1", "P 1", Default},
	{2, "P-1", "-P 1", Default},
	{3, "P2", "P 2y", Default},
	{4, "P21", "P 2yb", Default},
	{5, "C2", "C 2y", Default},
	{6, "Pm", "P -2y", Default},
	{7, "Pc", "P -2yc", Default},
	{8, "Cm", "C -2y", Default},
	{9, "Cc", "C -2yc", Default},
	{10, "P2/m", "-P 2y", Default},
	{11, "P21/m", "-P 2yb", Default},
	{12, "C2/m", "-C 2y", Default},
	{13, "P2/c", "-P 2yc", Default},
	{14, "P21/c", "-P 2ybc", Default},
	{15, "C2/c", "-C 2yc", Default},
	{16, "P222", "P 2 2", Default},
	{17, "P2221", "P 2c 2", Default},
	{18, "P21212", "P 2 2ab", Default},
	{19, "P212121", "P 2ac 2ab", Default},
	{20, "C2221", "C 2c 2", Default},
	{21, "C222", "C 2 2", Default},
	{22, "F222", "F 2 2", Default},
	{23, "I222", "I 2 2", Default},
	{24, "I212121", "I 2b 2c", Default},
	{25, "Pmm2", "P 2 -2", Default},
	{26, "Pmc21", "P 2c -2", Default},
	{27, "Pcc2", "P 2 -2c", Default},
	{28, "Pma2", "P 2 -2a", Default},
	{29, "Pca21", "P 2c -2ac", Default},
	{30, "Pnc2", "P 2 -2bc", Default},
	{31, "Pmn21", "P 2ac -2", Default},
	{32, "Pba2", "P 2 -2ab", Default},
	{33, "Pna21", "P 2c -2n", Default},
	{34, "Pnn2", "P 2 -2n", Default},
	{35, "Cmm2", "C 2 -2", Default},
	{36, "Cmc21", "C 2c -2", Default},
	{37, "Ccc2", "C 2 -2c", Default},
	{38, "Amm2", "A 2 -2", Default},
	{39, "Aem2", "A 2 -2c", Default},
	{40, "Ama2", "A 2 -2a", Default},
	{41, "Aea2", "A 2 -2ac", Default},
	{42, "Fmm2", "F 2 -2", Default},
	{43, "Fdd2", "F 2 -2d", Default},
	{44, "Imm2", "I 2 -2", Default},
	{45, "Iba2", "I 2 -2c", Default},
	{46, "Ima2", "I 2 -2a", Default},
	{47, "Pmmm", "-P 2 2", Default},
	{48, "Pnnn", "P 2 2 -1n", Default},
	{49, "Pccm", "-P 2 2c", Default},
	{50, "Pban", "P 2 2 -1ab", Default},
	{51, "Pmma", "-P 2a 2a", Default},
	{52, "Pnna", "-P 2a 2bc", Default},
	{53, "Pmna", "-P 2ac 2", Default},
	{54, "Pcca", "-P 2a 2ac", Default},
	{55, "Pbam", "-P 2 2ab", Default},
	{56, "Pccn", "-P 2ab 2ac", Default},
	{57, "Pbcm", "-P 2c 2b", Default},
	{58, "Pnnm", "-P 2 2n", Default},
	{59, "Pmmn", "P 2 2ab -1ab", Default},
	{60, "Pbcn", "-P 2n 2ab", Default},
	{61, "Pbca", "-P 2ac 2ab", Default},
	{62, "Pnma", "-P 2ac 2n", Default},
	{63, "Cmcm", "-C 2c 2", Default},
	{64, "Cmce", "-C 2bc 2", Default},
	{65, "Cmmm", "-C 2 2", Default},
	{66, "Cccm", "-C 2 2c", Default},
	{67, "Cmme", "-C 2b 2", Default},
	{68, "Ccce", "C 2 2 -1bc", Default},
	{69, "Fmmm", "-F 2 2", Default},
	{70, "Fddd", "F 2 2 -1d", Default},
	{71, "Immm", "-I 2 2", Default},
	{72, "Ibam", "-I 2 2c", Default},
	{73, "Ibca", "-I 2b 2c", Default},
	{74, "Imma", "-I 2b 2", Default},
	{75, "P4", "P 4", Default},
	{76, "P41", "P 4w", Default},
	{77, "P42", "P 4c", Default},
	{78, "P43", "P 4cw", Default},
	{79, "I4", "I 4", Default},
	{80, "I41", "I 4bw", Default},
	{81, "P-4", "P -4", Default},
	{82, "I-4", "I -4", Default},
	{83, "P4/m", "-P 4", Default},
	{84, "P42/m", "-P 4c", Default},
	{85, "P4/n", "P 4ab -1ab", Default},
	{86, "P42/n", "P 4n -1n", Default},
	{87, "I4/m", "-I 4", Default},
	{88, "I41/a", "I 4bw -1bw", Default},
	{89, "P422", "P 4 2", Default},
	{90, "P4212", "P 4ab 2ab", Default},
	{91, "P4122", "P 4w 2c", Default},
	{92, "P41212", "P 4abw 2nw", Default},
	{93, "P4222", "P 4c 2", Default},
	{94, "P42212", "P 4n 2n", Default},
	{95, "P4322", "P 4cw 2c", Default},
	{96, "P43212", "P 4nw 2abw", Default},
	{97, "I422", "I 4 2", Default},
	{98, "I4122", "I 4bw 2bw", Default},
	{99, "P4mm", "P 4 -2", Default},
	{100, "P4bm", "P 4 -2ab", Default},
	{101, "P42cm", "P 4c -2c", Default},
	{102, "P42nm", "P 4n -2n", Default},
	{103, "P4cc", "P 4 -2c", Default},
	{104, "P4nc", "P 4 -2n", Default},
	{105, "P42mc", "P 4c -2", Default},
	{106, "P42bc", "P 4c -2ab", Default},
	{107, "I4mm", "I 4 -2", Default},
	{108, "I4cm", "I 4 -2c", Default},
	{109, "I41md", "I 4bw -2", Default},
	{110, "I41cd", "I 4bw -2c", Default},
	{111, "P-42m", "P -4 2", Default},
	{112, "P-42c", "P -4 2c", Default},
	{113, "P-421m", "P -4 2ab", Default},
	{114, "P-421c", "P -4 2n", Default},
	{115, "P-4m2", "P -4 -2", Default},
	{116, "P-4c2", "P -4 -2c", Default},
	{117, "P-4b2", "P -4 -2ab", Default},
	{118, "P-4n2", "P -4 -2n", Default},
	{119, "I-4m2", "I -4 -2", Default},
	{120, "I-4c2", "I -4 -2c", Default},
	{121, "I-42m", "I -4 2", Default},
	{122, "I-42d", "I -4 2bw", Default},
	{123, "P4/mmm", "-P 4 2", Default},
	{124, "P4/mcc", "-P 4 2c", Default},
	{125, "P4/nbm", "P 4 2 -1ab", Default},
	{126, "P4/nnc", "P 4 2 -1n", Default},
	{127, "P4/mbm", "-P 4 2ab", Default},
	{128, "P4/mnc", "-P 4 2n", Default},
	{129, "P4/nmm", "P 4ab 2ab -1ab", Default},
	{130, "P4/ncc", "P 4ab 2n -1ab", Default},
	{131, "P42/mmc", "-P 4c 2", Default},
	{132, "P42/mcm", "-P 4c 2c", Default},
	{133, "P42/nbc", "P 4n 2c -1n", Default},
	{134, "P42/nnm", "P 4n 2 -1n", Default},
	{135, "P42/mbc", "-P 4c 2ab", Default},
	{136, "P42/mnm", "-P 4n 2n", Default},
	{137, "P42/nmc", "P 4n 2n -1n", Default},
	{138, "P42/ncm", "P 4n 2ab -1n", Default},
	{139, "I4/mmm", "-I 4 2", Default},
	{140, "I4/mcm", "-I 4 2c", Default},
	{141, "I41/amd", "I 4bw 2bw -1bw", Default},
	{142, "I41/acd", "I 4bw 2aw -1bw", Default},
	{143, "P3", "P 3", Default},
	{144, "P31", "P 31", Default},
	{145, "P32", "P 32", Default},
	{146, "R3", "R 3", Default},
	{147, "P-3", "-P 3", Default},
	{148, "R-3", "-R 3", Default},
	{149, "P312", "P 3 2", Default},
	{150, "P321", "P 3 2\"", Default},
	{151, "P3112", "P 31 2c (0 0 1)", Default},
	{152, "P3121", "P 31 2\"", Default},
	{153, "P3212", "P 32 2c (0 0 -1)", Default},
	{154, "P3221", "P 32 2\"", Default},
	{155, "R32", "R 3 2\"", Default},
	{156, "P3m1", "P 3 -2\"", Default},
	{157, "P31m", "P 3 -2", Default},
	{158, "P3c1", "P 3 -2\"c", Default},
	{159, "P31c", "P 3 -2c", Default},
	{160, "R3m", "R 3 -2\"", Default},
	{161, "R3c", "R 3 -2\"c", Default},
	{162, "P-31m", "-P 3 2", Default},
	{163, "P-31c", "-P 3 2c", Default},
	{164, "P-3m1", "-P 3 2\"", Default},
	{165, "P-3c1", "-P 3 2\"c", Default},
	{166, "R-3m", "-R 3 2\"", Default},
	{167, "R-3c", "-R 3 2\"c", Default},
	{168, "P6", "P 6", Default},
	{169, "P61", "P 61", Default},
	{170, "P65", "P 65", Default},
	{171, "P62", "P 62", Default},
	{172, "P64", "P 64", Default},
	{173, "P63", "P 6c", Default},
	{174, "P-6", "P -6", Default},
	{175, "P6/m", "-P 6", Default},
	{176, "P63/m", "-P 6c", Default},
	{177, "P622", "P 6 2", Default},
	{178, "P6122", "P 61 2 (0 0 -1)", Default},
	{179, "P6522", "P 65 2 (0 0 1)", Default},
	{180, "P6222", "P 62 2c (0 0 1)", Default},
	{181, "P6422", "P 64 2c (0 0 -1)", Default},
	{182, "P6322", "P 6c 2c", Default},
	{183, "P6mm", "P 6 -2", Default},
	{184, "P6cc", "P 6 -2c", Default},
	{185, "P63cm", "P 6c -2", Default},
	{186, "P63mc", "P 6c -2c", Default},
	{187, "P-6m2", "P -6 2", Default},
	{188, "P-6c2", "P -6c 2", Default},
	{189, "P-62m", "P -6 -2", Default},
	{190, "P-62c", "P -6c -2c", Default},
	{191, "P6/mmm", "-P 6 2", Default},
	{192, "P6/mcc", "-P 6 2c", Default},
	{193, "P63/mcm", "-P 6c 2", Default},
	{194, "P63/mmc", "-P 6c 2c", Default},
	{195, "P23", "P 2 2 3", Default},
	{196, "F23", "F 2 2 3", Default},
	{197, "I23", "I 2 2 3", Default},
	{198, "P213", "P 2ac 2ab 3", Default},
	{199, "I213", "I 2b 2c 3", Default},
	{200, "Pm-3", "-P 2 2 3", Default},
	{201, "Pn-3", "P 2 2 3 -1n", Default},
	{202, "Fm-3", "-F 2 2 3", Default},
	{203, "Fd-3", "F 2 2 3 -1d", Default},
	{204, "Im-3", "-I 2 2 3", Default},
	{205, "Pa-3", "-P 2ac 2ab 3", Default},
	{206, "Ia-3", "-I 2b 2c 3", Default},
	{207, "P432", "P 4 2 3", Default},
	{208, "P4232", "P 4n 2 3", Default},
	{209, "F432", "F 4 2 3", Default},
	{210, "F4132", "F 4d 2 3", Default},
	{211, "I432", "I 4 2 3", Default},
	{212, "P4332", "P 4acd 2ab 3", Default},
	{213, "P4132", "P 4bd 2ab 3", Default},
	{214, "I4132", "I 4bd 2c 3", Default},
	{215, "P-43m", "P -4 2 3", Default},
	{216, "F-43m", "F -4 2 3", Default},
	{217, "I-43m", "I -4 2 3", Default},
	{218, "P-43n", "P -4n 2 3", Default},
	{219, "F-43c", "F -4c 2 3", Default},
	{220, "I-43d", "I -4bd 2c 3", Default},
	{221, "Pm-3m", "-P 4 2 3", Default},
	{222, "Pn-3n", "P 4 2 3 -1n", Default},
	{223, "Pm-3n", "-P 4n 2 3", Default},
	{224, "Pn-3m", "P 4n 2 3 -1n", Default},
	{225, "Fm-3m", "-F 4 2 3", Default},
	{226, "Fm-3c", "-F 4c 2 3", Default},
	{227, "Fd-3m", "F 4d 2 3 -1d", Default},
	{228, "Fd-3c", "F 4d 2 3 -1cd", Default},
	{229, "Im-3m", "-I 4 2 3", Default},
	{230, "Ia-3d", "-I 4bd 2c 3", Default},
}

// alternate holds the second origin choice of the groups that have two, and
// the rhombohedral-axes setting of the seven R groups.
var alternate = []entry{
	{48, "Pnnn", "-P 2ab 2bc", Origin2},
	{50, "Pban", "-P 2ab 2b", Origin2},
	{59, "Pmmn", "-P 2ab 2a", Origin2},
	{68, "Ccce", "-C 2b 2bc", Origin2},
	{70, "Fddd", "-F 2uv 2vw", Origin2},
	{85, "P4/n", "-P 4a", Origin2},
	{86, "P42/n", "-P 4bc", Origin2},
	{88, "I41/a", "-I 4ad", Origin2},
	{125, "P4/nbm", "-P 4a 2b", Origin2},
	{126, "P4/nnc", "-P 4a 2bc", Origin2},
	{129, "P4/nmm", "-P 4a 2a", Origin2},
	{130, "P4/ncc", "-P 4a 2ac", Origin2},
	{133, "P42/nbc", "-P 4ac 2b", Origin2},
	{134, "P42/nnm", "-P 4ac 2bc", Origin2},
	{137, "P42/nmc", "-P 4ac 2a", Origin2},
	{138, "P42/ncm", "-P 4ac 2ac", Origin2},
	{141, "I41/amd", "-I 4bd 2", Origin2},
	{142, "I41/acd", "-I 4bd 2c", Origin2},
	{201, "Pn-3", "-P 2ab 2bc 3", Origin2},
	{203, "Fd-3", "-F 2uv 2vw 3", Origin2},
	{222, "Pn-3n", "-P 4a 2bc 3", Origin2},
	{224, "Pn-3m", "-P 4bc 2bc 3", Origin2},
	{227, "Fd-3m", "-F 4vw 2vw 3", Origin2},
	{228, "Fd-3c", "-F 4cvw 2vw 3", Origin2},
	{146, "R3", "P 3*", Rhombohedral},
	{148, "R-3", "-P 3*", Rhombohedral},
	{155, "R32", "P 3* 2", Rhombohedral},
	{160, "R3m", "P 3* -2", Rhombohedral},
	{161, "R3c", "P 3* -2n", Rhombohedral},
	{166, "R-3m", "-P 3* 2", Rhombohedral},
	{167, "R-3c", "-P 3* 2n", Rhombohedral},
}

// aliases maps superseded or common alternative symbols to catalogue numbers.
var aliases = map[string]int{
	"Abm2": 39,
	"Aba2": 41,
	"Cmca": 64,
	"Cmma": 67,
	"Ccca": 68,
	"P121": 3,
	"P1211": 4,
	"C121": 5,
	"P12/c1": 13,
	"P121/c1": 14,
	"C12/c1": 15,
}
