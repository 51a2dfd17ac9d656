/*
 * family.go, part of gonci.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package criteria holds the geometric criteria that classify a pair of atoms as
//a non-covalent interaction. Criteria are grouped in a closed set of families.
//Each family has a configuration key, an ordered list of thresholds and an
//evaluator, and can emit one or more interaction labels.
package criteria

import (
	"sort"

	nci "github.com/rmera/gonci"
)

//FamilyID identifies a criterion family. The order of the constants is the
//order in which families are evaluated.
type FamilyID int

const (
	HBNH FamilyID = iota
	HBNHOH
	HBOH
	HBOHOH
	CHN
	CHS
	CHO
	SHN
	SHO
	ElecXH
	ElecXHOH
	VdW
	PiPi
	Dipo
	OMulPol
	CHPi
	NHPi
	OHPi
	SHPi
	CHPiLegacy
	NHPiLegacy
	OHPiLegacy
	HalO
	HalN
	HalS
	CHF
	NHF
	OHF
	SHF
	CHHal
	NHHal
	OHHal
	SHHal
	HalPi
	NHS
	OHS
	SHS
	SO
	SN
	SS
	SF
	SPi
	Metal
	Ion
	NFamilies
)

type evaluator func(c *ctx, a, b int) []Hit

//Family is a criterion family.
type Family struct {
	ID     FamilyID
	Key    string //key in the parameter file
	Labels []string
	Params []ParamSpec
	First  nci.Role //the first atom must have one of these roles
	Second nci.Role //the second atom must have one of these roles
	Reach  int      //index of the threshold that bounds the pair distance
	legacy int      //1: only with the legacy donor-pi definitions, -1: only without them
	eval   evaluator
}

//Requires returns the roles that the first and second atom of a pair need
//for the family to be evaluated with the given thresholds.
func (F *Family) Requires(P *Params) (nci.Role, nci.Role) {
	if F.ID == Dipo && P != nil && P.Hydrogens == HydrogenAdd {
		return F.First | nci.RoleHydrogen, F.Second | nci.RoleHydrogen
	}
	return F.First, F.Second
}

//Legacy returns true for the families that are only used with the legacy donor-pi definitions.
func (F *Family) Legacy() bool {
	return F.legacy > 0
}

//Param returns the index of the threshold with the given name, or -1.
func (F *Family) Param(name string) int {
	for i, v := range F.Params {
		if v.Name == name {
			return i
		}
	}
	return -1
}

//Evaluate runs the family on the atoms a (first) and b (second) of E.M.
//A non-nil error means the evaluation could not be completed, and the hits must be discarded.
func (F *Family) Evaluate(E *Env, P *Params, a, b int) ([]Hit, error) {
	c := &ctx{Env: E, P: P, F: F}
	hits := F.eval(c, a, b)
	if c.err != nil {
		return nil, c.err
	}
	if err := c.G.Err(); err != nil {
		return nil, err
	}
	return hits, nil
}

func buffer(d float64) ParamSpec           { return ParamSpec{Name: "buffer", Kind: Buffer, Default: d} }
func dist(name string, d float64) ParamSpec { return ParamSpec{Name: name, Kind: Dist, Default: d} }
func angle(name string, d float64) ParamSpec {
	return ParamSpec{Name: name, Kind: Angle, Default: d}
}
func coef(d float64) ParamSpec { return ParamSpec{Name: "coef", Kind: Coef, Default: d} }
func strict(s ParamSpec) ParamSpec {
	s.Strict = true
	return s
}

const (
	donors     = nci.RoleHDonor
	acceptors  = nci.RoleHAcceptor
	accOrS     = nci.RoleHAcceptor | nci.RoleSulfur
	heavy      = nci.RoleHeavy
	pi         = nci.RolePi
	halogen    = nci.RoleHalogen
	fluorine   = nci.RoleFluorine
	sulfur     = nci.RoleSulfur
	dipoleHead = nci.RoleDipoleHead
	dipoleTail = nci.RoleDipoleTail
)

var registry [NFamilies]*Family

func register(F *Family) {
	registry[F.ID] = F
}

func init() {
	hbN := []ParamSpec{dist("dist", 3.5), angle("angle_min", 120), angle("angle_max", 180), angle("angle_n4_min", 120), angle("acc_angle_min", 90), angle("acc_angle_max", 180)}
	hbNOH := []ParamSpec{dist("dist", 3.5), angle("angle_min", 120), angle("angle_max", 180), angle("angle_n4_min", 120), angle("angle_h_min", 90), angle("angle_x_min", 90)}
	hbO := []ParamSpec{dist("dist", 3.5), angle("angle_min", 120), angle("angle_max", 180), angle("acc_angle_min", 90), angle("acc_angle_max", 180)}
	hbOOH := []ParamSpec{dist("dist", 3.5), angle("angle_min", 120), angle("angle_max", 180), angle("angle_h_min", 90), angle("angle_x_min", 90)}
	register(&Family{ID: HBNH, Key: "HB_NH_(N,O)", Labels: []string{"HB_NH_N", "HB_NH_O"}, Params: hbN, First: donors, Second: acceptors, eval: hbondNH})
	register(&Family{ID: HBNHOH, Key: "HB_NH_OH", Labels: []string{"HB_NH_O"}, Params: hbNOH, First: donors, Second: acceptors, eval: hbondNHOH})
	register(&Family{ID: HBOH, Key: "HB_OH_(N,O)", Labels: []string{"HB_OH_N", "HB_OH_O"}, Params: hbO, First: donors, Second: acceptors, eval: hbondOH})
	register(&Family{ID: HBOHOH, Key: "HB_OH_OH", Labels: []string{"HB_OH_O"}, Params: hbOOH, First: donors, Second: acceptors, eval: hbondOHOH})

	register(&Family{ID: CHN, Key: "CH_N", Labels: []string{"CH_N"}, Params: []ParamSpec{buffer(0.5), dist("dist1", 2.75), dist("dist2", 3.0), angle("angle1", 160), angle("angle2", 120)}, First: nci.RoleCHDonor, Second: acceptors, eval: chN})
	register(&Family{ID: CHS, Key: "CH_S", Labels: []string{"CH_S"}, Params: []ParamSpec{buffer(0.5), dist("dist1", 2.95), dist("dist2", 3.2), angle("angle1", 160), angle("angle2", 120)}, First: nci.RoleCHDonor, Second: sulfur, eval: chS})
	register(&Family{ID: CHO, Key: "CH_O", Labels: []string{"CH_O"}, Params: []ParamSpec{buffer(0.5), strict(dist("dist1", 2.7)), angle("angle1", 160), angle("angle2", 120)}, First: nci.RoleCHDonor, Second: acceptors, eval: chO})
	register(&Family{ID: SHN, Key: "SH_N", Labels: []string{"SH_N"}, Params: []ParamSpec{buffer(0.5), angle("angle", 130)}, First: donors, Second: acceptors, eval: shX})
	register(&Family{ID: SHO, Key: "SH_O", Labels: []string{"SH_O"}, Params: []ParamSpec{buffer(0.5), angle("angle", 130)}, First: donors, Second: acceptors, eval: shX})

	register(&Family{ID: ElecXH, Key: "Elec_(NH,OH)_(N,O)", Labels: []string{"Elec_NH_N", "Elec_NH_O", "Elec_OH_N", "Elec_OH_O"},
		Params: []ParamSpec{strict(dist("dist_min", 3.5)), buffer(0.9), angle("angle_min", 100), angle("angle_max", 180), angle("angle_n4_min", 90), angle("acc_angle_min", 60), angle("acc_angle_max", 180)},
		First: donors, Second: acceptors, Reach: 1, eval: elec})
	register(&Family{ID: ElecXHOH, Key: "Elec_(N,O)H_OH", Labels: []string{"Elec_NH_O", "Elec_OH_O"},
		Params: []ParamSpec{strict(dist("dist_min", 3.5)), buffer(0.9), angle("angle_min", 100), angle("angle_max", 180), angle("angle_n4_min", 90), angle("angle_h_min", 60), angle("angle_x_min", 60)},
		First: donors, Second: acceptors, Reach: 1, eval: elecOH})

	register(&Family{ID: VdW, Key: "vdW", Labels: []string{"vdW"}, Params: []ParamSpec{buffer(0.5), dist("diff", 0.3), dist("dist1", 2.4), strict(dist("dist2", 2.4)), dist("dist3", 3.2)}, First: heavy, Second: heavy, eval: vdw})
	register(&Family{ID: PiPi, Key: "PI_PI", Labels: []string{"PI_PI"}, Params: []ParamSpec{buffer(1.0), angle("angle1", 30), angle("angle2", 50)}, First: pi, Second: pi, eval: piPi})
	register(&Family{ID: Dipo, Key: "Dipo", Labels: []string{"Dipo"},
		Params: []ParamSpec{buffer(0.5), angle("angle1", 120), angle("angle2", 110), angle("angle3", 110), {Name: "charge", Kind: Charge, Default: 0.3}},
		First: dipoleHead, Second: dipoleTail, eval: dipole})
	register(&Family{ID: OMulPol, Key: "OMulPol", Labels: []string{"OMulPol"},
		Params: []ParamSpec{buffer(0.5), angle("angle1_min", 70), angle("angle1_max", 110), angle("angle2", 30), angle("angle3", 125), {Name: "charge", Kind: Charge, Default: 0.2}},
		First: dipoleHead, Second: dipoleTail, eval: multipolar})

	xhpi := func() []ParamSpec {
		return []ParamSpec{buffer(1.0), coef(1.2), dist("dist1", 2.9), dist("dist2", 3.2), angle("angle1", 40), angle("angle2", 120)}
	}
	register(&Family{ID: CHPi, Key: "CH_PI", Labels: []string{"CH_PI"}, Params: xhpi(), First: nci.RoleCHDonor, Second: pi, legacy: -1, eval: xhPi})
	register(&Family{ID: NHPi, Key: "NH_PI", Labels: []string{"NH_PI"}, Params: xhpi(), First: donors, Second: pi, legacy: -1, eval: xhPi})
	register(&Family{ID: OHPi, Key: "OH_PI", Labels: []string{"OH_PI"}, Params: xhpi(), First: donors, Second: pi, legacy: -1, eval: xhPi})
	register(&Family{ID: SHPi, Key: "SH_PI", Labels: []string{"SH_PI"}, Params: xhpi(), First: donors, Second: pi, eval: xhPi})
	oldpi := func() []ParamSpec {
		return []ParamSpec{buffer(0.5), angle("angle1_min", 0), angle("angle1_max", 45), angle("dihedral1", 60), strict(angle("dihedral2", 30))}
	}
	register(&Family{ID: CHPiLegacy, Key: "CH_PI_legacy", Labels: []string{"CH_PI"}, Params: oldpi(), First: pi, Second: nci.RoleCHDonor, legacy: 1, eval: xhPiLegacy})
	register(&Family{ID: NHPiLegacy, Key: "NH_PI_legacy", Labels: []string{"NH_PI"}, Params: oldpi(), First: pi, Second: donors, legacy: 1, eval: xhPiLegacy})
	register(&Family{ID: OHPiLegacy, Key: "OH_PI_legacy", Labels: []string{"OH_PI"}, Params: oldpi(), First: pi, Second: donors, legacy: 1, eval: xhPiLegacy})

	halbond := func() []ParamSpec { return []ParamSpec{buffer(0.5), angle("angle", 30)} }
	register(&Family{ID: HalO, Key: "Hal_(X)_O", Labels: []string{"Hal_Cl_O", "Hal_Br_O", "Hal_I_O"}, Params: halbond(), First: halogen, Second: accOrS, eval: halogenBond})
	register(&Family{ID: HalN, Key: "Hal_(X)_N", Labels: []string{"Hal_Cl_N", "Hal_Br_N", "Hal_I_N"}, Params: halbond(), First: halogen, Second: accOrS, eval: halogenBond})
	register(&Family{ID: HalS, Key: "Hal_(X)_S", Labels: []string{"Hal_Cl_S", "Hal_Br_S", "Hal_I_S"}, Params: halbond(), First: halogen, Second: accOrS, eval: halogenBond})

	xhf := func() []ParamSpec {
		return []ParamSpec{buffer(0.5), dist("dist1", 2.6), angle("angle1", 150), strict(angle("angle2", 120)), dist("water_dist1", 2.6)}
	}
	register(&Family{ID: CHF, Key: "CH_F", Labels: []string{"CH_F"}, Params: xhf(), First: nci.RoleCHDonor, Second: fluorine, eval: xhF})
	register(&Family{ID: NHF, Key: "NH_F", Labels: []string{"NH_F"}, Params: xhf(), First: donors, Second: fluorine, eval: xhF})
	register(&Family{ID: OHF, Key: "OH_F", Labels: []string{"OH_F"}, Params: xhf(), First: donors, Second: fluorine, eval: xhF})
	register(&Family{ID: SHF, Key: "SH_F", Labels: []string{"SH_F"}, Params: xhf(), First: donors, Second: fluorine, eval: xhF})

	xhhal := func() []ParamSpec {
		return []ParamSpec{buffer(0.5), angle("angle1", 160), angle("angle2", 160), angle("angle3", 45), angle("angle4", 60)}
	}
	for _, d := range []struct {
		id   FamilyID
		sym  string
		role nci.Role
	}{{CHHal, "C", nci.RoleCHDonor}, {NHHal, "N", donors}, {OHHal, "O", donors}, {SHHal, "S", donors}} {
		labels := make([]string, 0, 3)
		for _, x := range []string{"Cl", "Br", "I"} {
			labels = append(labels, d.sym+"H_Hal_"+x)
		}
		register(&Family{ID: d.id, Key: d.sym + "H_Hal_(X)", Labels: labels, Params: xhhal(), First: d.role, Second: halogen, eval: xhHalogen})
	}
	register(&Family{ID: HalPi, Key: "Hal_PI_(X)", Labels: []string{"Hal_PI_Cl", "Hal_PI_Br", "Hal_PI_I"},
		Params: []ParamSpec{buffer(0.5), coef(1.2), angle("angle1", 140), angle("dihedral", 0)}, First: halogen, Second: pi, eval: halogenPi})

	register(&Family{ID: NHS, Key: "NH_S", Labels: []string{"NH_S"},
		Params: []ParamSpec{buffer(0.5), dist("dist1", 2.9), dist("dist2", 3.2), angle("angle1_min", 120), angle("angle1_max", 180), angle("angle2_min", 140), angle("angle2_max", 180)},
		First: donors, Second: sulfur, eval: nhS})
	register(&Family{ID: OHS, Key: "OH_S", Labels: []string{"OH_S"}, Params: []ParamSpec{buffer(0.5), angle("angle", 130)}, First: donors, Second: sulfur, eval: xhS})
	register(&Family{ID: SHS, Key: "SH_S", Labels: []string{"SH_S"}, Params: []ParamSpec{buffer(0.5), angle("angle", 130)}, First: donors, Second: sulfur, eval: xhS})
	register(&Family{ID: SO, Key: "S_O", Labels: []string{"S_O"}, Params: []ParamSpec{buffer(0.5)}, First: sulfur, Second: acceptors, eval: sO})
	register(&Family{ID: SN, Key: "S_N", Labels: []string{"S_N"}, Params: []ParamSpec{buffer(0.5)}, First: sulfur, Second: acceptors, eval: sN})
	register(&Family{ID: SS, Key: "S_S", Labels: []string{"S_S"}, Params: []ParamSpec{buffer(0.5), angle("angle", 130)}, First: sulfur, Second: sulfur, eval: sS})
	register(&Family{ID: SF, Key: "S_F", Labels: []string{"S_F"}, Params: []ParamSpec{buffer(0.5), angle("angle", 130)}, First: sulfur, Second: fluorine, eval: sF})
	register(&Family{ID: SPi, Key: "S_PI", Labels: []string{"S_PI"},
		Params: []ParamSpec{buffer(1.0), coef(1.2), angle("angle1", 0), angle("angle2", 120), angle("dihedral", 0)}, First: sulfur, Second: pi, eval: sPi})

	metals := []string{"Fe", "Zn", "Ca", "Mg", "Ni"}
	ions := []string{"Na", "K", "Cl"}
	register(&Family{ID: Metal, Key: "(Met)_(X)", Labels: xLabels(metals), Params: []ParamSpec{buffer(0.0)}, First: nci.RoleMetal, Second: accOrS, eval: metal})
	register(&Family{ID: Ion, Key: "(Ion)_(X)", Labels: xLabels(ions), Params: []ParamSpec{buffer(0.0)}, First: nci.RoleIon, Second: heavy, eval: ion})
}

func xLabels(syms []string) []string {
	ret := make([]string, len(syms))
	for i, v := range syms {
		ret[i] = v + "_X"
	}
	return ret
}

//Families returns all the families, in evaluation order.
func Families() []*Family {
	ret := make([]*Family, NFamilies)
	copy(ret, registry[:])
	return ret
}

//Active returns the families used in a run, in evaluation order. With legacy,
//the legacy donor-pi definitions replace the CH, NH and OH ones.
func Active(legacy bool) []*Family {
	ret := make([]*Family, 0, NFamilies)
	for _, f := range registry {
		if (legacy && f.legacy < 0) || (!legacy && f.legacy > 0) {
			continue
		}
		ret = append(ret, f)
	}
	return ret
}

//Lookup returns the family with the given configuration key, or nil.
func Lookup(key string) *Family {
	for _, f := range registry {
		if f.Key == key {
			return f
		}
	}
	return nil
}

//Get returns the family with the given ID.
func Get(id FamilyID) *Family {
	return registry[id]
}

//Keys returns the configuration keys of all families, sorted.
func Keys() []string {
	ret := make([]string, 0, NFamilies)
	for _, f := range registry {
		ret = append(ret, f.Key)
	}
	sort.Strings(ret)
	return ret
}
