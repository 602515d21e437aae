package scattering

// cromerMann holds a four-Gaussian fit f(s) = Σ aᵢ·exp(−bᵢ·s²) + c of the
// neutral-atom X-ray form factor, s = sinθ/λ in Å⁻¹. a and c are in
// electrons, b in Å². Coefficients: International Tables for
// Crystallography Vol. C, Table 6.1.1.4.
type cromerMann struct {
	a, b [4]float64
	c    float64
}

// xrayTable is keyed by atomic number.
var xrayTable = map[int]cromerMann{
	1: {a: [4]float64{0.489918, 0.262003, 0.196767, 0.049879}, b: [4]float64{20.6593, 7.74039, 49.5519, 2.20159}, c: 0.001305}, // H
	2: {a: [4]float64{0.8734, 0.6309, 0.3112, 0.178}, b: [4]float64{9.1037, 3.3568, 22.9276, 0.9821}, c: 0.0064}, // He
	3: {a: [4]float64{1.1282, 0.7508, 0.6175, 0.4653}, b: [4]float64{3.9546, 1.0524, 85.3905, 168.261}, c: 0.0377}, // Li
	4: {a: [4]float64{1.5919, 1.1278, 0.5391, 0.7029}, b: [4]float64{43.6427, 1.8623, 103.483, 0.542}, c: 0.0385}, // Be
	5: {a: [4]float64{2.0545, 1.3326, 1.0979, 0.7068}, b: [4]float64{23.2185, 1.021, 60.3498, 0.1403}, c: -0.1932}, // B
	6: {a: [4]float64{2.31, 1.02, 1.5886, 0.865}, b: [4]float64{20.8439, 10.2075, 0.5687, 51.6512}, c: 0.2156}, // C
	7: {a: [4]float64{12.2126, 3.1322, 2.0125, 1.1663}, b: [4]float64{0.0057, 9.8933, 28.9975, 0.5826}, c: -11.529}, // N
	8: {a: [4]float64{3.0485, 2.2868, 1.5463, 0.867}, b: [4]float64{13.2771, 5.7011, 0.3239, 32.9089}, c: 0.2508}, // O
	9: {a: [4]float64{3.5392, 2.6412, 1.517, 1.0243}, b: [4]float64{10.2825, 4.2944, 0.2615, 26.1476}, c: 0.2776}, // F
	10: {a: [4]float64{3.9553, 3.1125, 1.4546, 1.1251}, b: [4]float64{8.4042, 3.4262, 0.2306, 21.7184}, c: 0.3515}, // Ne
	11: {a: [4]float64{4.7626, 3.1736, 1.2674, 1.1128}, b: [4]float64{3.285, 8.8422, 0.3136, 129.424}, c: 0.676}, // Na
	12: {a: [4]float64{5.4204, 2.1735, 1.2269, 2.3073}, b: [4]float64{2.8275, 79.2611, 0.3808, 7.1937}, c: 0.8584}, // Mg
	13: {a: [4]float64{6.4202, 1.9002, 1.5936, 1.9646}, b: [4]float64{3.0387, 0.7426, 31.5472, 85.0886}, c: 1.1151}, // Al
	14: {a: [4]float64{6.2915, 3.0353, 1.9891, 1.541}, b: [4]float64{2.4386, 32.3337, 0.6785, 81.6937}, c: 1.1407}, // Si
	15: {a: [4]float64{6.4345, 4.1791, 1.78, 1.4908}, b: [4]float64{1.9067, 27.157, 0.526, 68.1645}, c: 1.1149}, // P
	16: {a: [4]float64{6.9053, 5.2034, 1.4379, 1.5863}, b: [4]float64{1.4679, 22.2151, 0.2536, 56.172}, c: 0.8669}, // S
	17: {a: [4]float64{11.4604, 7.1962, 6.2556, 1.6455}, b: [4]float64{0.0104, 1.1662, 18.5194, 47.7784}, c: -9.5574}, // Cl
	18: {a: [4]float64{7.4845, 6.7723, 0.6539, 1.6442}, b: [4]float64{0.9072, 14.8407, 43.8983, 33.3929}, c: 1.4445}, // Ar
	19: {a: [4]float64{8.2186, 7.4398, 1.0519, 0.8659}, b: [4]float64{12.7949, 0.7748, 213.187, 41.6841}, c: 1.4228}, // K
	20: {a: [4]float64{8.6266, 7.3873, 1.5899, 1.0211}, b: [4]float64{10.4421, 0.6599, 85.7484, 178.437}, c: 1.3751}, // Ca
	22: {a: [4]float64{9.7595, 7.3558, 1.6991, 1.9021}, b: [4]float64{7.8508, 0.5, 35.6338, 116.105}, c: 1.2807}, // Ti
	23: {a: [4]float64{10.2971, 7.3511, 2.0703, 2.0571}, b: [4]float64{6.8657, 0.4385, 26.8938, 102.478}, c: 1.2199}, // V
	24: {a: [4]float64{10.6406, 7.3537, 3.324, 1.4922}, b: [4]float64{6.1038, 0.392, 20.2626, 98.7399}, c: 1.1832}, // Cr
	25: {a: [4]float64{11.2819, 7.3573, 3.0193, 2.2441}, b: [4]float64{5.3409, 0.3432, 17.8674, 83.7543}, c: 1.0896}, // Mn
	26: {a: [4]float64{11.7695, 7.3573, 3.5222, 2.3045}, b: [4]float64{4.7611, 0.3072, 15.3535, 76.8805}, c: 1.0369}, // Fe
	27: {a: [4]float64{12.2841, 7.3409, 4.0034, 2.3488}, b: [4]float64{4.2791, 0.2784, 13.5359, 71.1692}, c: 1.0118}, // Co
	28: {a: [4]float64{12.8376, 7.292, 4.4438, 2.38}, b: [4]float64{3.8785, 0.2565, 12.1763, 66.3421}, c: 1.0341}, // Ni
	29: {a: [4]float64{13.338, 7.1676, 5.6158, 1.6735}, b: [4]float64{3.5828, 0.247, 11.3966, 64.8126}, c: 1.191}, // Cu
	30: {a: [4]float64{14.0743, 7.0318, 5.1652, 2.41}, b: [4]float64{3.2655, 0.2333, 10.3163, 58.7097}, c: 1.3041}, // Zn
	31: {a: [4]float64{15.2354, 6.7006, 4.3591, 2.9623}, b: [4]float64{3.0669, 0.2412, 10.7805, 61.4135}, c: 1.7189}, // Ga
	32: {a: [4]float64{16.0816, 6.3747, 3.7068, 3.683}, b: [4]float64{2.8509, 0.2516, 11.4468, 54.7625}, c: 2.1313}, // Ge
	40: {a: [4]float64{17.8765, 10.948, 5.41732, 3.65721}, b: [4]float64{1.27618, 11.916, 0.117622, 87.6627}, c: 2.06929}, // Zr
	41: {a: [4]float64{17.6142, 12.0144, 4.04183, 3.53346}, b: [4]float64{1.18865, 11.766, 0.204785, 69.7957}, c: 3.75591}, // Nb
	42: {a: [4]float64{3.7025, 17.2356, 12.8876, 3.7429}, b: [4]float64{0.2772, 1.0958, 11.004, 61.6584}, c: 4.3875}, // Mo
	47: {a: [4]float64{19.2808, 16.6885, 4.8045, 1.0463}, b: [4]float64{0.6446, 7.4726, 24.6605, 99.8156}, c: 5.179}, // Ag
	50: {a: [4]float64{19.1889, 19.1005, 4.4585, 2.4663}, b: [4]float64{5.8303, 0.5031, 26.8909, 83.9571}, c: 4.7821}, // Sn
	73: {a: [4]float64{29.2024, 15.2293, 14.5135, 4.76492}, b: [4]float64{1.77333, 9.37046, 0.295977, 63.3644}, c: 9.24354}, // Ta
	74: {a: [4]float64{29.0818, 15.43, 14.4327, 5.11982}, b: [4]float64{1.72029, 9.2259, 0.321703, 57.056}, c: 9.8875}, // W
	78: {a: [4]float64{27.0059, 17.7639, 15.7131, 5.7837}, b: [4]float64{1.51293, 8.81174, 0.424593, 38.6103}, c: 11.6883}, // Pt
	79: {a: [4]float64{16.8819, 18.5913, 25.5582, 5.86}, b: [4]float64{0.4611, 8.6216, 1.4826, 36.3956}, c: 12.0658}, // Au
	82: {a: [4]float64{31.0617, 13.0637, 18.442, 5.9696}, b: [4]float64{0.6902, 2.3576, 8.618, 47.2579}, c: 13.4118}, // Pb
}
